package services

import (
	"context"
	"errors"
	"fmt"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
)

// applicationService implements ApplicationServiceInterface
type applicationService struct {
	applicationRepo repositories.ApplicationRepositoryInterface
	communityRepo   repositories.CommunityRepositoryInterface
	audit           AuditServiceInterface
	metrics         MetricsRecorderInterface
	activity        ActivityLoggerInterface
}

// NewApplicationService creates the membership application service
func NewApplicationService(
	applicationRepo repositories.ApplicationRepositoryInterface,
	communityRepo repositories.CommunityRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) ApplicationServiceInterface {
	return &applicationService{
		applicationRepo: applicationRepo,
		communityRepo:   communityRepo,
		audit:           audit,
		metrics:         metrics,
		activity:        activity,
	}
}

// Submit stores a public membership request as pending
func (s *applicationService) Submit(ctx context.Context, req *dto.SubmitApplicationRequest, ipAddress, userAgent string) (*models.Application, error) {
	communityID, err := requireCommunity(ctx, s.communityRepo, req.CommunityID)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		CommunityID: communityID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       models.NormalizeEmail(req.Email),
		Phone:       req.Phone,
		Message:     req.Message,
		Status:      models.ApplicationStatusPending,
	}
	if err := application.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	s.audit.Record(ctx, models.Actor{IPAddress: ipAddress, UserAgent: userAgent},
		models.AuditActionCreate, models.AuditResourceApplication, application.ID.String(),
		map[string]interface{}{"community_id": communityID.String(), "email": application.Email})
	return application, nil
}

func (s *applicationService) Get(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	return s.applicationRepo.GetByID(ctx, id)
}

func (s *applicationService) List(ctx context.Context, filters models.ApplicationFilters) ([]models.Application, int64, error) {
	return s.applicationRepo.List(ctx, filters)
}

// Approve turns a pending application into a member
func (s *applicationService) Approve(ctx context.Context, actor models.Actor, id uuid.UUID, note string) (*models.Application, *models.Member, error) {
	application, member, err := s.applicationRepo.Approve(ctx, id, actor.UserID, note)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) ||
			errors.Is(err, models.ErrApplicationReviewed) ||
			errors.Is(err, repositories.ErrMemberAlreadyExists) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to approve application: %w", err)
	}

	s.reviewed(ctx, actor, application, models.AuditActionApprove,
		map[string]interface{}{"member_id": member.ID.String()})
	return application, member, nil
}

// Reject closes a pending application without creating a member
func (s *applicationService) Reject(ctx context.Context, actor models.Actor, id uuid.UUID, note string) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := application.Reject(actor.UserID, note); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to reject application: %w", err)
	}

	s.reviewed(ctx, actor, application, models.AuditActionReject, nil)
	return application, nil
}

func (s *applicationService) reviewed(ctx context.Context, actor models.Actor, application *models.Application, decision string, metadata map[string]interface{}) {
	s.audit.Record(ctx, actor, decision, models.AuditResourceApplication, application.ID.String(), metadata)
	s.metrics.IncrementCounter("application_reviewed", map[string]string{"decision": decision})
	s.activity.LogApplicationReviewed(ctx, application.ID, decision, actor.UserID)
}
