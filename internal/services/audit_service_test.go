package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"temple-admin/internal/models"
	"temple-admin/internal/repositories/repository_mocks"
	"temple-admin/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AuditServiceTestSuite is the test suite for AuditService
type AuditServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockAuditLogRepositoryInterface
	metrics  *service_mocks.MockMetricsRecorderInterface
	service  AuditServiceInterface
	ctx      context.Context
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewAuditService(s.mockRepo, s.metrics, slog.Default())
	s.ctx = WithTraceID(context.Background(), "trace-123")
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestValidateAuditAction() {
	for _, action := range []string{
		models.AuditActionLogin, models.AuditActionLogout, models.AuditActionCreate,
		models.AuditActionApprove, models.AuditActionExport,
	} {
		s.NoError(ValidateAuditAction(action), action)
	}

	s.ErrorIs(ValidateAuditAction("transfer.created"), ErrInvalidAuditAction)
	s.ErrorIs(ValidateAuditAction(""), ErrInvalidAuditAction)
}

func (s *AuditServiceTestSuite) TestRecord_WritesEntry() {
	userID := uuid.New()
	actor := models.Actor{UserID: userID, Role: models.RoleAdmin, IPAddress: "10.0.0.7", UserAgent: "Mozilla/5.0"}

	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Require().NotNil(log.UserID)
			s.Equal(userID, *log.UserID)
			s.Equal(models.AuditActionCreate, log.Action)
			s.Equal(models.AuditResourceDonation, log.Resource)
			s.Equal("donation-1", log.ResourceID)
			s.Equal("10.0.0.7", log.IPAddress)
			s.Equal("Mozilla/5.0", log.UserAgent)
			s.Equal("DON-1", log.Metadata["receipt_number"])
			return nil
		})
	s.metrics.EXPECT().IncrementCounter("audit_event", map[string]string{
		"action":   models.AuditActionCreate,
		"resource": models.AuditResourceDonation,
	})

	s.service.Record(s.ctx, actor, models.AuditActionCreate, models.AuditResourceDonation, "donation-1",
		map[string]interface{}{"receipt_number": "DON-1"})
}

func (s *AuditServiceTestSuite) TestRecord_AnonymousActor() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
			s.Nil(log.UserID)
			return nil
		})
	s.metrics.EXPECT().IncrementCounter("audit_event", gomock.Any())

	s.service.Record(s.ctx, models.Actor{IPAddress: "203.0.113.9"}, models.AuditActionFailedLogin, models.AuditResourceUser, "", nil)
}

func (s *AuditServiceTestSuite) TestRecord_RepositoryFailureIsSwallowed() {
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(errors.New("connection reset"))

	s.NotPanics(func() {
		s.service.Record(s.ctx, models.Actor{}, models.AuditActionDelete, models.AuditResourceMember, "m-1", nil)
	})
}

func (s *AuditServiceTestSuite) TestRecord_UnknownActionIsDropped() {
	s.service.Record(s.ctx, models.Actor{}, "account.created", models.AuditResourceMember, "m-1", nil)
}

func (s *AuditServiceTestSuite) TestList() {
	userID := uuid.New()
	filters := models.AuditLogFilters{UserID: &userID, Resource: models.AuditResourcePuja}
	logs := []models.AuditLog{{ID: uuid.New(), Action: models.AuditActionCancel}}

	s.mockRepo.EXPECT().List(s.ctx, filters).Return(logs, int64(1), nil)

	result, total, err := s.service.List(s.ctx, filters)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(logs, result)
}

func (s *AuditServiceTestSuite) TestList_Error() {
	s.mockRepo.EXPECT().List(s.ctx, gomock.Any()).Return(nil, int64(0), errors.New("db down"))

	_, _, err := s.service.List(s.ctx, models.AuditLogFilters{})
	s.Error(err)
	s.Contains(err.Error(), "failed to list audit logs")
}

func (s *AuditServiceTestSuite) TestPurgeOlderThan() {
	s.mockRepo.EXPECT().DeleteOlderThan(s.ctx, 90*24*time.Hour).Return(int64(12), nil)

	deleted, err := s.service.PurgeOlderThan(s.ctx, 90*24*time.Hour)
	s.NoError(err)
	s.Equal(int64(12), deleted)
}

func (s *AuditServiceTestSuite) TestPurgeOlderThan_InvalidRetention() {
	_, err := s.service.PurgeOlderThan(s.ctx, 0)
	s.ErrorIs(err, ErrInvalidRetention)
}
