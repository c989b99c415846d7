package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"staffbook/internal/staff/metrics"
	"staffbook/internal/staff/models"
	dErrors "staffbook/pkg/domain-errors"
	"staffbook/pkg/platform/audit"
	"staffbook/pkg/platform/sentinel"
)

// EmployeeStore is the slot table the service drives. Implementations need
// not be safe for concurrent use; the service serializes every call.
type EmployeeStore interface {
	Count() int
	Capacity() int
	Sequence() *models.Sequence
	Add(department models.Department, family, given, patronymic string, salary float64) (*models.Employee, bool)
	AddEmployee(e *models.Employee) bool
	FindByID(id int64) (*models.Employee, bool)
	FindByPerson(p models.Person) (*models.Employee, bool)
	RemoveByID(id int64) (*models.Employee, bool)
	RemoveByPerson(p models.Person) (*models.Employee, bool)
	ChangeByID(id int64, c models.Change) (*models.Employee, bool)
	ChangeByPerson(p models.Person, c models.Change) (*models.Employee, bool)
	ByDepartment(d models.Department) iter.Seq[*models.Employee]
}

type AuditStore interface {
	Append(ctx context.Context, event audit.Event) error
}

// Service guards an EmployeeStore with a single mutex and reports every
// mutation to the logger, metrics and audit trail.
//
// Employees returned by the service are detached copies; mutate them through
// Change, not through their setters.
type Service struct {
	mu      sync.Mutex
	store   EmployeeStore
	bookID  uuid.UUID
	logger  *slog.Logger
	audit   AuditStore
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditStore(store AuditStore) Option {
	return func(s *Service) {
		s.audit = store
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBookID overrides the random instance id attached to logs and events.
func WithBookID(id uuid.UUID) Option {
	return func(s *Service) {
		s.bookID = id
	}
}

// New constructs a Service.
func New(store EmployeeStore, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "employee store is required")
	}
	s := &Service{
		store:  store,
		bookID: uuid.New(),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.logger = s.logger.With("book_id", s.bookID)
	return s, nil
}

// BookID identifies this service instance in logs and audit events.
func (s *Service) BookID() uuid.UUID {
	return s.bookID
}

// Count returns the number of employees in the book.
func (s *Service) Count(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Count()
}

// Capacity returns the fixed number of slots.
func (s *Service) Capacity(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Capacity()
}

// Issued reports how many employee ids have ever been assigned by the store's
// sequence.
func (s *Service) Issued(_ context.Context) int64 {
	return s.store.Sequence().Issued()
}

// Hire validates the input and adds a new employee.
//
// Errors: CodeValidation for an unknown department or an invalid salary;
// CodeCapacityExhausted (wrapping sentinel.ErrCapacityExhausted) when every
// slot is taken.
func (s *Service) Hire(ctx context.Context, department models.Department, family, given, patronymic string, salary float64) (*models.Employee, error) {
	defer s.observe("hire", s.now())

	if err := validateHire(department, salary); err != nil {
		s.rejected(ctx, models.NewPerson(family, given, patronymic), err)
		return nil, err
	}

	s.mu.Lock()
	e, ok := s.store.Add(department, family, given, patronymic, salary)
	var snapshot *models.Employee
	if ok {
		snapshot = e.Clone()
	}
	count := s.store.Count()
	s.mu.Unlock()

	if !ok {
		err := capacityErr()
		s.rejected(ctx, models.NewPerson(family, given, patronymic), err)
		return nil, err
	}
	s.hired(ctx, snapshot, count)
	return snapshot, nil
}

// HireEmployee adds a copy of an already constructed employee. The copy keeps
// the id e was built with; later changes to e do not reach the book.
//
// Errors: CodeValidation for a nil employee, an unknown department or an
// invalid salary; CodeConflict (wrapping sentinel.ErrConflict) when the id is
// already in the book; CodeCapacityExhausted when every slot is taken.
func (s *Service) HireEmployee(ctx context.Context, e *models.Employee) error {
	defer s.observe("hire", s.now())

	if e == nil {
		return dErrors.New(dErrors.CodeValidation, "employee is required")
	}
	if err := validateHire(e.Department(), e.Salary()); err != nil {
		s.rejected(ctx, e.Person(), err)
		return err
	}

	stored := e.Clone()

	s.mu.Lock()
	_, taken := s.store.FindByID(stored.ID())
	ok := !taken && s.store.AddEmployee(stored)
	var snapshot *models.Employee
	if ok {
		snapshot = stored.Clone()
	}
	count := s.store.Count()
	s.mu.Unlock()

	switch {
	case taken:
		err := conflictErr(stored.ID())
		s.rejected(ctx, stored.Person(), err)
		return err
	case !ok:
		err := capacityErr()
		s.rejected(ctx, stored.Person(), err)
		return err
	}
	s.hired(ctx, snapshot, count)
	return nil
}

// Get returns the employee with the given id.
func (s *Service) Get(_ context.Context, id int64) (*models.Employee, error) {
	defer s.observe("get", s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.store.FindByID(id)
	if !ok {
		return nil, notFoundErr()
	}
	return e.Clone(), nil
}

// GetByPerson returns the first employee with the given identity.
func (s *Service) GetByPerson(_ context.Context, p models.Person) (*models.Employee, error) {
	defer s.observe("get", s.now())

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.store.FindByPerson(p)
	if !ok {
		return nil, notFoundErr()
	}
	return e.Clone(), nil
}

// GetByName normalizes the name parts and looks the person up.
func (s *Service) GetByName(ctx context.Context, family, given, patronymic string) (*models.Employee, error) {
	return s.GetByPerson(ctx, models.NewPerson(family, given, patronymic))
}

// Remove deletes the employee with the given id. The id is never reused.
func (s *Service) Remove(ctx context.Context, id int64) error {
	defer s.observe("remove", s.now())

	s.mu.Lock()
	e, ok := s.store.RemoveByID(id)
	count := s.store.Count()
	s.mu.Unlock()

	if !ok {
		return notFoundErr()
	}
	s.removed(ctx, e, count)
	return nil
}

// RemoveByPerson deletes the first employee with the given identity.
func (s *Service) RemoveByPerson(ctx context.Context, p models.Person) error {
	defer s.observe("remove", s.now())

	s.mu.Lock()
	e, ok := s.store.RemoveByPerson(p)
	count := s.store.Count()
	s.mu.Unlock()

	if !ok {
		return notFoundErr()
	}
	s.removed(ctx, e, count)
	return nil
}

// RemoveByName normalizes the name parts and removes the person.
func (s *Service) RemoveByName(ctx context.Context, family, given, patronymic string) error {
	return s.RemoveByPerson(ctx, models.NewPerson(family, given, patronymic))
}

// Change applies a partial update to the employee with the given id.
//
// An empty change returns the current record and records no change event.
//
// Errors: CodeValidation when a supplied field is invalid; CodeNotFound when
// no employee matches.
func (s *Service) Change(ctx context.Context, id int64, c models.Change) (*models.Employee, error) {
	defer s.observe("change", s.now())

	if err := c.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	e, ok := s.store.ChangeByID(id, c)
	var snapshot *models.Employee
	if ok {
		snapshot = e.Clone()
	}
	s.mu.Unlock()

	if !ok {
		return nil, notFoundErr()
	}
	if !c.IsEmpty() {
		s.changed(ctx, snapshot, c)
	}
	return snapshot, nil
}

// ChangeByPerson applies a partial update to the first employee with the
// given identity.
func (s *Service) ChangeByPerson(ctx context.Context, p models.Person, c models.Change) (*models.Employee, error) {
	defer s.observe("change", s.now())

	if err := c.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	e, ok := s.store.ChangeByPerson(p, c)
	var snapshot *models.Employee
	if ok {
		snapshot = e.Clone()
	}
	s.mu.Unlock()

	if !ok {
		return nil, notFoundErr()
	}
	if !c.IsEmpty() {
		s.changed(ctx, snapshot, c)
	}
	return snapshot, nil
}

// ChangeByName normalizes the name parts and updates that person.
func (s *Service) ChangeByName(ctx context.Context, family, given, patronymic string, c models.Change) (*models.Employee, error) {
	return s.ChangeByPerson(ctx, models.NewPerson(family, given, patronymic), c)
}

// ByDepartment returns copies of every employee in d, in slot order.
func (s *Service) ByDepartment(_ context.Context, d models.Department) []*models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Employee
	for e := range s.store.ByDepartment(d) {
		out = append(out, e.Clone())
	}
	return out
}

// Names returns prefix plus the full name of every employee in d, in slot
// order.
func (s *Service) Names(ctx context.Context, prefix string, d models.Department) []string {
	employees := s.ByDepartment(ctx, d)
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, prefix+e.Person().FullName())
	}
	return names
}

func validateHire(department models.Department, salary float64) error {
	if !department.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "unknown department")
	}
	return models.ValidateSalary(salary)
}

func notFoundErr() error {
	return dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "employee not found")
}

func capacityErr() error {
	return dErrors.Wrap(sentinel.ErrCapacityExhausted, dErrors.CodeCapacityExhausted, "staff book is full")
}

func conflictErr(id int64) error {
	return dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, fmt.Sprintf("employee id %d already in use", id))
}
