package models

import (
	"strconv"

	dErrors "staffbook/pkg/domain-errors"
)

// Department selects one of the organization's units.
// Invariant: the value must be one of the declared departments.
//
// Usage: construct via ParseDepartment at trust boundaries; direct casting
// bypasses validation.
type Department uint8

// Departments are numbered one to five.
const (
	DepartmentFirst Department = iota + 1
	DepartmentSecond
	DepartmentThird
	DepartmentFourth
	DepartmentFifth
)

// Departments lists every valid department in order.
func Departments() []Department {
	return []Department{
		DepartmentFirst,
		DepartmentSecond,
		DepartmentThird,
		DepartmentFourth,
		DepartmentFifth,
	}
}

// ParseDepartment converts a department number ("1".."5") into a Department.
//
// Errors: returns CodeInvalidInput when the value is not a number or is out
// of range.
func ParseDepartment(s string) (Department, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "department must be a number")
	}
	if n < int(DepartmentFirst) || n > int(DepartmentFifth) {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "unknown department")
	}
	return Department(n), nil
}

// IsValid checks if d is one of the declared departments.
func (d Department) IsValid() bool {
	return d >= DepartmentFirst && d <= DepartmentFifth
}

func (d Department) String() string {
	return "Department " + strconv.Itoa(int(d))
}
