// Package report renders the staff book for a console.
package report

import (
	"context"
	"fmt"
	"io"

	"staffbook/internal/staff/models"
)

// NamePrefix starts every name line of the department report.
const NamePrefix = "- "

// Source is the read side of the staff book the printer needs.
type Source interface {
	Names(ctx context.Context, prefix string, d models.Department) []string
	ByDepartment(ctx context.Context, d models.Department) []*models.Employee
}

// Printer writes human-readable reports to w.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Departments prints, for every department, a header line followed by one
// prefixed full name per employee in slot order and a blank line.
func (p *Printer) Departments(ctx context.Context, src Source) error {
	for _, d := range models.Departments() {
		if _, err := fmt.Fprintln(p.w, d); err != nil {
			return err
		}
		for _, name := range src.Names(ctx, NamePrefix, d) {
			if _, err := fmt.Fprintln(p.w, name); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	return nil
}

// Roster prints one formatted row per employee, grouped by department. With
// no departments given every department is printed.
func (p *Printer) Roster(ctx context.Context, src Source, departments ...models.Department) error {
	if len(departments) == 0 {
		departments = models.Departments()
	}
	for _, d := range departments {
		for _, e := range src.ByDepartment(ctx, d) {
			if _, err := fmt.Fprintln(p.w, FormatEmployee(e)); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatEmployee renders e as a fixed-width row: department, id, the three
// name components and the salary with two decimals.
func FormatEmployee(e *models.Employee) string {
	person := e.Person()
	return fmt.Sprintf("%-12s %4d %-15s %-15s %-15s %10.2f",
		e.Department(), e.ID(), person.Family(), person.Given(), person.Patronymic(), e.Salary())
}
