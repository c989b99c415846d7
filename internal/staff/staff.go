package staff

import (
	"staffbook/internal/staff/models"
	"staffbook/internal/staff/service"
	employeestore "staffbook/internal/staff/store/employee"
)

// Service exposes staff book orchestration.
type Service = service.Service

// NewService constructs a staff book with the given number of slots, backed by
// the in-memory slot table and numbered from seq (models.DefaultSequence when
// nil).
func NewService(capacity int, seq *models.Sequence, opts ...service.Option) (*Service, error) {
	return service.New(employeestore.NewInMemory(capacity, employeestore.WithSequence(seq)), opts...)
}
