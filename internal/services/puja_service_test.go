package services

import (
	"context"
	"testing"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories/repository_mocks"
	"temple-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PujaServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	ctx           context.Context
	actor         models.Actor
	now           time.Time
	communityID   uuid.UUID
	pujaRepo      *repository_mocks.MockPujaRepositoryInterface
	communityRepo *repository_mocks.MockCommunityRepositoryInterface
	audit         *service_mocks.MockAuditServiceInterface
	metrics       *service_mocks.MockMetricsRecorderInterface
	activity      *service_mocks.MockActivityLoggerInterface
	service       *pujaService
}

func (s *PujaServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.actor = models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	s.now = time.Date(2026, 10, 1, 6, 0, 0, 0, time.UTC)
	s.communityID = uuid.New()
	s.pujaRepo = repository_mocks.NewMockPujaRepositoryInterface(s.ctrl)
	s.communityRepo = repository_mocks.NewMockCommunityRepositoryInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.activity = service_mocks.NewMockActivityLoggerInterface(s.ctrl)
	s.service = NewPujaService(s.pujaRepo, s.communityRepo, s.audit, s.metrics, s.activity).(*pujaService)
	s.service.now = func() time.Time { return s.now }
}

func (s *PujaServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPujaServiceSuite(t *testing.T) {
	suite.Run(t, new(PujaServiceSuite))
}

func (s *PujaServiceSuite) request() *dto.CreatePujaRequest {
	return &dto.CreatePujaRequest{
		CommunityID: s.communityID.String(),
		Name:        "Satyanarayana Puja",
		Location:    "Main Hall",
		ScheduledAt: s.now.Add(48 * time.Hour),
		Fee:         "101",
	}
}

func (s *PujaServiceSuite) scheduled() *models.Puja {
	return &models.Puja{
		ID:              uuid.New(),
		CommunityID:     s.communityID,
		Name:            "Abhishekam",
		Location:        "Main Hall",
		ScheduledAt:     s.now.Add(24 * time.Hour),
		DurationMinutes: 60,
		Status:          models.PujaStatusScheduled,
	}
}

func (s *PujaServiceSuite) TestCreate() {
	s.communityRepo.EXPECT().Exists(s.ctx, s.communityID).Return(true, nil)
	s.pujaRepo.EXPECT().FindOverlapping(s.ctx, gomock.Any()).Return(nil, nil)
	s.pujaRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(nil)
	s.audit.EXPECT().Record(s.ctx, s.actor, models.AuditActionCreate, models.AuditResourcePuja, gomock.Any(), gomock.Any())

	puja, err := s.service.Create(s.ctx, s.actor, s.request())
	s.Require().NoError(err)
	s.Equal(models.DefaultPujaDurationMinutes, puja.DurationMinutes)
	s.Equal(models.PujaStatusScheduled, puja.Status)
	s.Equal("101.00", puja.Fee.StringFixed(2))
}

func (s *PujaServiceSuite) TestCreate_Conflict() {
	existing := s.scheduled()
	existing.Name = "Ganesh Homam"

	s.communityRepo.EXPECT().Exists(s.ctx, s.communityID).Return(true, nil)
	s.pujaRepo.EXPECT().FindOverlapping(s.ctx, gomock.Any()).Return([]models.Puja{*existing}, nil)
	s.metrics.EXPECT().IncrementCounter("schedule_conflict", gomock.Nil())
	s.activity.EXPECT().LogScheduleConflict(s.ctx, gomock.Any(), []uuid.UUID{existing.ID}, "Main Hall")

	_, err := s.service.Create(s.ctx, s.actor, s.request())
	s.ErrorIs(err, ErrScheduleConflict)
	s.ErrorContains(err, "Ganesh Homam")
}

func (s *PujaServiceSuite) TestCreate_InvalidFee() {
	for _, fee := range []string{"abc", "-5"} {
		req := s.request()
		req.Fee = fee
		s.communityRepo.EXPECT().Exists(s.ctx, s.communityID).Return(true, nil)

		_, err := s.service.Create(s.ctx, s.actor, req)
		s.ErrorIs(err, ErrInvalidInput, fee)
	}
}

func (s *PujaServiceSuite) TestCreate_DurationTooLong() {
	req := s.request()
	req.DurationMinutes = models.MaxPujaDurationMinutes + 1
	s.communityRepo.EXPECT().Exists(s.ctx, s.communityID).Return(true, nil)

	_, err := s.service.Create(s.ctx, s.actor, req)
	s.ErrorIs(err, ErrInvalidInput)
}

func (s *PujaServiceSuite) TestUpdate_RescheduleChecksConflicts() {
	puja := s.scheduled()
	later := s.now.Add(72 * time.Hour)

	s.pujaRepo.EXPECT().GetByID(s.ctx, puja.ID).Return(puja, nil)
	s.pujaRepo.EXPECT().FindOverlapping(s.ctx, puja).Return(nil, nil)
	s.pujaRepo.EXPECT().Update(s.ctx, puja).Return(nil)
	s.audit.EXPECT().Record(s.ctx, s.actor, models.AuditActionUpdate, models.AuditResourcePuja, puja.ID.String(), gomock.Nil())

	updated, err := s.service.Update(s.ctx, s.actor, puja.ID, &dto.UpdatePujaRequest{ScheduledAt: &later})
	s.Require().NoError(err)
	s.Equal(later, updated.ScheduledAt)
}

func (s *PujaServiceSuite) TestUpdate_RenameSkipsConflictCheck() {
	puja := s.scheduled()

	s.pujaRepo.EXPECT().GetByID(s.ctx, puja.ID).Return(puja, nil)
	s.pujaRepo.EXPECT().Update(s.ctx, puja).Return(nil)
	s.audit.EXPECT().Record(s.ctx, s.actor, models.AuditActionUpdate, models.AuditResourcePuja, puja.ID.String(), gomock.Nil())

	updated, err := s.service.Update(s.ctx, s.actor, puja.ID, &dto.UpdatePujaRequest{PriestName: strPtr("Pandit Sharma")})
	s.Require().NoError(err)
	s.Equal("Pandit Sharma", updated.PriestName)
}

func (s *PujaServiceSuite) TestUpdate_Closed() {
	puja := s.scheduled()
	puja.Status = models.PujaStatusCancelled
	s.pujaRepo.EXPECT().GetByID(s.ctx, puja.ID).Return(puja, nil)

	_, err := s.service.Update(s.ctx, s.actor, puja.ID, &dto.UpdatePujaRequest{Name: strPtr("x")})
	s.ErrorIs(err, ErrPujaClosed)
}

func (s *PujaServiceSuite) TestCancel() {
	puja := s.scheduled()
	s.pujaRepo.EXPECT().GetByID(s.ctx, puja.ID).Return(puja, nil)
	s.pujaRepo.EXPECT().Update(s.ctx, puja).Return(nil)
	s.audit.EXPECT().Record(s.ctx, s.actor, models.AuditActionCancel, models.AuditResourcePuja, puja.ID.String(), gomock.Nil())

	cancelled, err := s.service.Cancel(s.ctx, s.actor, puja.ID)
	s.Require().NoError(err)
	s.Equal(models.PujaStatusCancelled, cancelled.Status)
}

func (s *PujaServiceSuite) TestComplete_AlreadyCancelled() {
	puja := s.scheduled()
	puja.Status = models.PujaStatusCancelled
	s.pujaRepo.EXPECT().GetByID(s.ctx, puja.ID).Return(puja, nil)

	_, err := s.service.Complete(s.ctx, s.actor, puja.ID)
	s.ErrorIs(err, ErrPujaClosed)
}

func (s *PujaServiceSuite) TestUpcoming_DefaultLimit() {
	pujas := []models.Puja{*s.scheduled(), *s.scheduled()}
	s.pujaRepo.EXPECT().ListUpcoming(s.ctx, &s.communityID, s.now, DefaultUpcomingLimit).Return(pujas, nil)
	s.metrics.EXPECT().RecordGauge("upcoming_pujas", 2.0, gomock.Nil())

	got, err := s.service.Upcoming(s.ctx, &s.communityID, 0)
	s.Require().NoError(err)
	s.Len(got, 2)
}
