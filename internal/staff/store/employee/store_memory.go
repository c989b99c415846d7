package employee

import (
	"iter"

	"staffbook/internal/staff/models"
)

// DefaultCapacity is the number of slots a store gets when none is requested.
const DefaultCapacity = 1000

// InMemory is a fixed-capacity employee table.
//
// Slots are scanned linearly from index zero for every lookup and insert;
// empty slots are scanned too. A removed employee leaves its slot empty and
// nothing is compacted, so the next insert reuses the first hole. Ids are
// never reused because they come from the Sequence, not from the slot.
//
// InMemory is not safe for concurrent use. Callers sharing a store must hold
// an external lock around every call (see service.Service).
type InMemory struct {
	slots []*models.Employee
	count int
	seq   *models.Sequence
}

// Option configures an InMemory store.
type Option func(*InMemory)

// WithSequence makes the store assign ids from seq instead of
// models.DefaultSequence.
func WithSequence(seq *models.Sequence) Option {
	return func(s *InMemory) {
		if seq != nil {
			s.seq = seq
		}
	}
}

// NewInMemory creates a store with the given number of slots. A capacity of
// zero or less uses DefaultCapacity. The capacity never changes afterwards.
func NewInMemory(capacity int, opts ...Option) *InMemory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &InMemory{
		slots: make([]*models.Employee, capacity),
		seq:   models.DefaultSequence,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Capacity returns the fixed number of slots.
func (s *InMemory) Capacity() int {
	return len(s.slots)
}

// Count returns the number of occupied slots.
func (s *InMemory) Count() int {
	return s.count
}

// Sequence returns the id sequence new employees are numbered from.
func (s *InMemory) Sequence() *models.Sequence {
	return s.seq
}

// Add builds an employee from raw name parts and stores it in the first empty
// slot. A full table reports false without consuming an id.
func (s *InMemory) Add(department models.Department, family, given, patronymic string, salary float64) (*models.Employee, bool) {
	i := s.freeIndex()
	if i < 0 {
		return nil, false
	}
	e := models.NewEmployeeFromName(s.seq, department, family, given, patronymic, salary)
	s.placeAt(i, e)
	return e, true
}

// AddEmployee places e in the first empty slot. It reports false when every
// slot is occupied or an occupied slot already holds e's id; e is then
// discarded. Equal persons with distinct ids are allowed.
func (s *InMemory) AddEmployee(e *models.Employee) bool {
	if e == nil || s.indexByID(e.ID()) >= 0 {
		return false
	}
	i := s.freeIndex()
	if i < 0 {
		return false
	}
	s.placeAt(i, e)
	return true
}

// FindByID returns the first employee with the given id.
func (s *InMemory) FindByID(id int64) (*models.Employee, bool) {
	i := s.indexByID(id)
	if i < 0 {
		return nil, false
	}
	return s.slots[i], true
}

// FindByPerson returns the first employee whose person equals p.
func (s *InMemory) FindByPerson(p models.Person) (*models.Employee, bool) {
	i := s.indexByPerson(p)
	if i < 0 {
		return nil, false
	}
	return s.slots[i], true
}

// FindByName normalizes the name parts and looks the person up.
func (s *InMemory) FindByName(family, given, patronymic string) (*models.Employee, bool) {
	return s.FindByPerson(models.NewPerson(family, given, patronymic))
}

// RemoveByID clears the slot holding id.
func (s *InMemory) RemoveByID(id int64) (*models.Employee, bool) {
	return s.removeAt(s.indexByID(id))
}

// RemoveByPerson clears the first slot whose person equals p.
func (s *InMemory) RemoveByPerson(p models.Person) (*models.Employee, bool) {
	return s.removeAt(s.indexByPerson(p))
}

// RemoveByName normalizes the name parts and removes the person.
func (s *InMemory) RemoveByName(family, given, patronymic string) (*models.Employee, bool) {
	return s.RemoveByPerson(models.NewPerson(family, given, patronymic))
}

// ChangeByID applies c to the employee with the given id.
func (s *InMemory) ChangeByID(id int64, c models.Change) (*models.Employee, bool) {
	return s.changeAt(s.indexByID(id), c)
}

// ChangeByPerson applies c to the first employee whose person equals p.
func (s *InMemory) ChangeByPerson(p models.Person, c models.Change) (*models.Employee, bool) {
	return s.changeAt(s.indexByPerson(p), c)
}

// ChangeByName normalizes the name parts and applies c to that person.
func (s *InMemory) ChangeByName(family, given, patronymic string, c models.Change) (*models.Employee, bool) {
	return s.ChangeByPerson(models.NewPerson(family, given, patronymic), c)
}

// All yields every occupied slot in slot order.
func (s *InMemory) All() iter.Seq[*models.Employee] {
	return func(yield func(*models.Employee) bool) {
		for _, e := range s.slots {
			if e != nil && !yield(e) {
				return
			}
		}
	}
}

// ByDepartment yields, in slot order, every employee in department d.
func (s *InMemory) ByDepartment(d models.Department) iter.Seq[*models.Employee] {
	return func(yield func(*models.Employee) bool) {
		for e := range s.All() {
			if e.Department() == d && !yield(e) {
				return
			}
		}
	}
}

// Names returns prefix followed by the full name of every employee in
// department d, in slot order.
func (s *InMemory) Names(prefix string, d models.Department) []string {
	var names []string
	for e := range s.ByDepartment(d) {
		names = append(names, prefix+e.Person().FullName())
	}
	return names
}

func (s *InMemory) freeIndex() int {
	for i, e := range s.slots {
		if e == nil {
			return i
		}
	}
	return -1
}

func (s *InMemory) placeAt(i int, e *models.Employee) {
	s.slots[i] = e
	s.count++
}

func (s *InMemory) indexByID(id int64) int {
	for i, e := range s.slots {
		if e != nil && e.ID() == id {
			return i
		}
	}
	return -1
}

func (s *InMemory) indexByPerson(p models.Person) int {
	for i, e := range s.slots {
		if e != nil && e.Person().Equal(p) {
			return i
		}
	}
	return -1
}

func (s *InMemory) removeAt(i int) (*models.Employee, bool) {
	if i < 0 {
		return nil, false
	}
	e := s.slots[i]
	s.slots[i] = nil
	s.count--
	return e, true
}

func (s *InMemory) changeAt(i int, c models.Change) (*models.Employee, bool) {
	if i < 0 {
		return nil, false
	}
	s.slots[i].Apply(c)
	return s.slots[i], true
}
