package models

// Employee is one stored staff record.
//
// Invariants:
//   - ID is unique, assigned from a Sequence on construction and immutable
//   - Person is immutable
//   - Department and Salary change only through their setters
type Employee struct {
	id         int64
	person     Person
	department Department
	salary     float64
}

// NewEmployee creates an employee and assigns it the next id from seq.
// A nil seq uses DefaultSequence.
func NewEmployee(seq *Sequence, department Department, person Person, salary float64) *Employee {
	if seq == nil {
		seq = DefaultSequence
	}
	return &Employee{
		id:         seq.Next(),
		person:     person,
		department: department,
		salary:     salary,
	}
}

// NewEmployeeFromName is NewEmployee with the person built from raw name parts.
func NewEmployeeFromName(seq *Sequence, department Department, family, given, patronymic string, salary float64) *Employee {
	return NewEmployee(seq, department, NewPerson(family, given, patronymic), salary)
}

func (e *Employee) ID() int64              { return e.id }
func (e *Employee) Person() Person         { return e.person }
func (e *Employee) Department() Department { return e.department }
func (e *Employee) Salary() float64        { return e.salary }

func (e *Employee) SetDepartment(d Department) {
	e.department = d
}

func (e *Employee) SetSalary(salary float64) {
	e.salary = salary
}

// Clone returns a detached copy carrying the same id.
func (e *Employee) Clone() *Employee {
	c := *e
	return &c
}

// Apply performs a partial update: nil fields are left unchanged.
func (e *Employee) Apply(c Change) {
	if c.Department != nil {
		e.department = *c.Department
	}
	if c.Salary != nil {
		e.salary = *c.Salary
	}
}
