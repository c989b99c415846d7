// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Blank is what an absent name part normalizes to.
const Blank = " "

// NormalizeNamePart canonicalizes one component of a person's name.
//
//   - "" becomes Blank
//   - a single rune is upper-cased as-is
//   - otherwise all whitespace is removed, the first rune upper-cased and the
//     rest lower-cased; if nothing is left the result is Blank
//
// Example:
//
//	NormalizeNamePart("  ivANov ")
//	// Returns: "Ivanov"
func NormalizeNamePart(s string) string {
	switch utf8.RuneCountInString(s) {
	case 0:
		return Blank
	case 1:
		return strings.ToUpper(s)
	}

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if stripped == "" {
		return Blank
	}

	first, size := utf8.DecodeRuneInString(stripped)
	return string(unicode.ToUpper(first)) + strings.ToLower(stripped[size:])
}

// JoinNameParts joins parts with single spaces and trims the result.
func JoinNameParts(parts ...string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}
