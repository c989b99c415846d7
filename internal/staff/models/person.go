package models

import (
	"github.com/cespare/xxhash/v2"

	pstrings "staffbook/pkg/platform/strings"
)

// Person is the canonical identity of an employee: family name, given name
// and patronymic.
//
// Invariants:
//   - every component is normalized on construction (see NormalizeNamePart)
//   - the full name and its hash are computed once and never change
//   - two persons are equal iff their full names are equal
//
// The zero value is not a valid Person; use NewPerson.
type Person struct {
	family     string
	given      string
	patronymic string

	name string
	hash uint64
}

// NewPerson normalizes the three name components. Inputs are coerced, never
// rejected.
func NewPerson(family, given, patronymic string) Person {
	p := Person{
		family:     pstrings.NormalizeNamePart(family),
		given:      pstrings.NormalizeNamePart(given),
		patronymic: pstrings.NormalizeNamePart(patronymic),
	}
	p.name = pstrings.JoinNameParts(p.family, p.given, p.patronymic)
	p.hash = xxhash.Sum64String(p.name)
	return p
}

// NewShortPerson builds a person without a patronymic.
func NewShortPerson(family, given string) Person {
	return NewPerson(family, given, "")
}

func (p Person) Family() string     { return p.family }
func (p Person) Given() string      { return p.given }
func (p Person) Patronymic() string { return p.patronymic }

// FullName returns the canonical joined and trimmed name.
func (p Person) FullName() string {
	return p.name
}

// Hash returns the cached hash of FullName.
func (p Person) Hash() uint64 {
	return p.hash
}

// Equal reports whether p and other name the same person. The hash only
// short-circuits mismatches; a hash match still compares full names.
func (p Person) Equal(other Person) bool {
	if p.hash != other.hash {
		return false
	}
	return p.name == other.name
}

func (p Person) String() string {
	return p.name
}
