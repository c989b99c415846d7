package service

import (
	"context"
	"time"

	"staffbook/internal/staff/models"
	"staffbook/pkg/attrs"
	dErrors "staffbook/pkg/domain-errors"
	"staffbook/pkg/platform/audit"
)

func (s *Service) hired(ctx context.Context, e *models.Employee, headcount int) {
	s.logAudit(ctx, audit.EventEmployeeHired,
		"employee_id", e.ID(),
		"subject", e.Person().FullName(),
		"department", e.Department().String(),
		"headcount", headcount)
	if s.metrics != nil {
		s.metrics.IncrementHired(headcount)
	}
}

func (s *Service) rejected(ctx context.Context, p models.Person, err error) {
	reason := string(dErrors.CodeOf(err))
	s.logger.WarnContext(ctx, "hire rejected",
		"subject", p.FullName(),
		"reason", reason,
		"error", err)
	s.emit(ctx, audit.EventHireRejected, "subject", p.FullName(), "reason", reason)
	if s.metrics != nil {
		s.metrics.IncrementRejected(reason)
	}
}

func (s *Service) removed(ctx context.Context, e *models.Employee, headcount int) {
	s.logAudit(ctx, audit.EventEmployeeRemoved,
		"employee_id", e.ID(),
		"subject", e.Person().FullName(),
		"headcount", headcount)
	if s.metrics != nil {
		s.metrics.IncrementRemoved(headcount)
	}
}

func (s *Service) changed(ctx context.Context, e *models.Employee, c models.Change) {
	args := []any{
		"employee_id", e.ID(),
		"subject", e.Person().FullName(),
	}
	if c.Department != nil {
		args = append(args, "department", c.Department.String())
	}
	if c.Salary != nil {
		args = append(args, "salary", *c.Salary)
	}
	s.logAudit(ctx, audit.EventEmployeeChanged, args...)
	if s.metrics != nil {
		s.metrics.IncrementChanged()
	}
}

func (s *Service) logAudit(ctx context.Context, event audit.AuditEvent, attributes ...any) {
	args := append(attributes, "event", event.String(), "log_type", "audit")
	s.logger.InfoContext(ctx, event.String(), args...)
	s.emit(ctx, event, attributes...)
}

// emit records event in the audit store. Audit failures are logged and never
// fail the operation that produced them.
func (s *Service) emit(ctx context.Context, event audit.AuditEvent, attributes ...any) {
	if s.audit == nil {
		return
	}
	err := s.audit.Append(ctx, audit.Event{
		Category:   event.Category(),
		Timestamp:  s.now(),
		BookID:     s.bookID,
		EmployeeID: attrs.ExtractInt64(attributes, "employee_id"),
		Subject:    attrs.ExtractString(attributes, "subject"),
		Action:     event.String(),
		Reason:     attrs.ExtractString(attributes, "reason"),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to append audit event", "event", event.String(), "error", err)
	}
}

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, start)
	}
}
