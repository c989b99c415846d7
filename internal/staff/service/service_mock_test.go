package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EmployeeStore,AuditStore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"staffbook/internal/staff/models"
	"staffbook/internal/staff/service/mocks"
	dErrors "staffbook/pkg/domain-errors"
	"staffbook/pkg/platform/audit"
)

// Unit tests against mocked ports: they pin down which store calls the service
// makes, with which normalized keys, and when audit events are emitted.
type ServiceMockSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *mocks.MockEmployeeStore
	mockAudit *mocks.MockAuditStore
	service   *Service
	ctx       context.Context
}

func TestServiceMockSuite(t *testing.T) {
	suite.Run(t, new(ServiceMockSuite))
}

func (s *ServiceMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockEmployeeStore(s.ctrl)
	s.mockAudit = mocks.NewMockAuditStore(s.ctrl)
	s.ctx = context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var err error
	s.service, err = New(s.mockStore, WithLogger(logger), WithAuditStore(s.mockAudit))
	s.Require().NoError(err)
}

func (s *ServiceMockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceMockSuite) TestHireForwardsRawNameParts() {
	e := models.NewEmployeeFromName(&models.Sequence{}, models.DepartmentSecond, "ivanov", "ivan", "", 100)

	s.mockStore.EXPECT().Add(models.DepartmentSecond, " ivanov", "ivan", "", 100.0).Return(e, true)
	s.mockStore.EXPECT().Count().Return(1)
	s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal("employee_hired", event.Action)
			s.Equal(audit.CategoryCompliance, event.Category)
			s.Equal(e.ID(), event.EmployeeID)
			s.Equal("Ivanov Ivan", event.Subject)
			return nil
		})

	got, err := s.service.Hire(s.ctx, models.DepartmentSecond, " ivanov", "ivan", "", 100)
	s.Require().NoError(err)
	s.Equal(e.ID(), got.ID())
	s.NotSame(e, got)
}

func (s *ServiceMockSuite) TestRejectedHireIsAudited() {
	s.mockStore.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false)
	s.mockStore.EXPECT().Count().Return(2)
	s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event audit.Event) error {
			s.Equal("hire_rejected", event.Action)
			s.Equal(audit.CategoryOperations, event.Category)
			s.Equal("capacity_exhausted", event.Reason)
			return nil
		})

	_, err := s.service.Hire(s.ctx, models.DepartmentFirst, "a", "b", "c", 1)
	s.True(dErrors.HasCode(err, dErrors.CodeCapacityExhausted))
}

func (s *ServiceMockSuite) TestNameLookupsUseNormalizedPerson() {
	want := models.NewPerson("Petrov", "Petr", "Petrovich")
	matchesPerson := gomock.Cond(func(x any) bool {
		p, ok := x.(models.Person)
		return ok && p.Equal(want)
	})

	s.Run("get", func() {
		s.mockStore.EXPECT().FindByPerson(matchesPerson).Return(nil, false)
		_, err := s.service.GetByName(s.ctx, "PETROV", "petr", " petrovich")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("remove not found emits nothing", func() {
		s.mockStore.EXPECT().RemoveByPerson(matchesPerson).Return(nil, false)
		s.mockStore.EXPECT().Count().Return(0)
		err := s.service.RemoveByName(s.ctx, "petrov", "PETR", "petrovich")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("change passes the update through", func() {
		change := models.SetSalary(500)
		s.mockStore.EXPECT().ChangeByPerson(matchesPerson, change).Return(nil, false)
		_, err := s.service.ChangeByName(s.ctx, "petrov", "petr", "petrovich", change)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceMockSuite) TestAuditErrorIsSwallowed() {
	e := models.NewEmployeeFromName(&models.Sequence{}, models.DepartmentFirst, "orlov", "ilya", "", 1)

	s.mockStore.EXPECT().RemoveByID(e.ID()).Return(e, true)
	s.mockStore.EXPECT().Count().Return(0)
	s.mockAudit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("sink down"))

	s.NoError(s.service.Remove(s.ctx, e.ID()))
}

func (s *ServiceMockSuite) TestIssuedReadsStoreSequence() {
	seq := &models.Sequence{}
	seq.Next()
	seq.Next()
	s.mockStore.EXPECT().Sequence().Return(seq)

	s.Equal(int64(2), s.service.Issued(s.ctx))
}
