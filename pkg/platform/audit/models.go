package audit

import (
	"time"

	"github.com/google/uuid"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers personnel changes with HR significance:
	// hires, removals, transfers and salary changes.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for operational visibility,
	// such as rejected hires.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from the staff service to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// BookID identifies the staff book instance that produced the event.
	BookID     uuid.UUID
	EmployeeID int64
	// Subject is the canonical full name of the employee.
	Subject string
	Action  string
	Reason  string
}

type AuditEvent string

const (
	EventEmployeeHired   AuditEvent = "employee_hired"
	EventEmployeeRemoved AuditEvent = "employee_removed"
	EventEmployeeChanged AuditEvent = "employee_changed"
	EventHireRejected    AuditEvent = "hire_rejected"
)

// Category returns the category an action belongs to.
func (e AuditEvent) Category() EventCategory {
	if e == EventHireRejected {
		return CategoryOperations
	}
	return CategoryCompliance
}

func (e AuditEvent) String() string {
	return string(e)
}
