package models

import (
	"math"

	dErrors "staffbook/pkg/domain-errors"
)

// Change is a partial update of an employee. A nil field means "leave
// unchanged"; there are no in-band sentinel values.
type Change struct {
	Department *Department
	Salary     *float64
}

// SetDepartment returns a Change that only moves the employee.
func SetDepartment(d Department) Change {
	return Change{Department: &d}
}

// SetSalary returns a Change that only updates the salary.
func SetSalary(salary float64) Change {
	return Change{Salary: &salary}
}

// WithDepartment returns a copy of c that also sets the department.
func (c Change) WithDepartment(d Department) Change {
	c.Department = &d
	return c
}

// WithSalary returns a copy of c that also sets the salary.
func (c Change) WithSalary(salary float64) Change {
	c.Salary = &salary
	return c
}

// IsEmpty reports whether c would modify nothing.
func (c Change) IsEmpty() bool {
	return c.Department == nil && c.Salary == nil
}

// Validate checks the supplied fields only.
func (c Change) Validate() error {
	if c.Department != nil && !c.Department.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown department")
	}
	if c.Salary != nil {
		return ValidateSalary(*c.Salary)
	}
	return nil
}

// ValidateSalary rejects NaN, infinite and negative salaries.
func ValidateSalary(salary float64) error {
	if math.IsNaN(salary) || math.IsInf(salary, 0) {
		return dErrors.New(dErrors.CodeValidation, "salary must be a finite number")
	}
	if salary < 0 {
		return dErrors.New(dErrors.CodeValidation, "salary cannot be negative")
	}
	return nil
}
