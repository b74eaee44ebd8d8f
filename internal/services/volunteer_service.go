package services

import (
	"context"
	"fmt"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
)

// volunteerService implements VolunteerServiceInterface
type volunteerService struct {
	volunteerRepo repositories.VolunteerRepositoryInterface
	communityRepo repositories.CommunityRepositoryInterface
	audit         AuditServiceInterface
}

// NewVolunteerService creates a volunteer service
func NewVolunteerService(
	volunteerRepo repositories.VolunteerRepositoryInterface,
	communityRepo repositories.CommunityRepositoryInterface,
	audit AuditServiceInterface,
) VolunteerServiceInterface {
	return &volunteerService{
		volunteerRepo: volunteerRepo,
		communityRepo: communityRepo,
		audit:         audit,
	}
}

func (s *volunteerService) Create(ctx context.Context, actor models.Actor, req *dto.CreateVolunteerRequest) (*models.Volunteer, error) {
	communityID, err := requireCommunity(ctx, s.communityRepo, req.CommunityID)
	if err != nil {
		return nil, err
	}
	memberID, err := parseOptionalUUID(req.MemberID)
	if err != nil {
		return nil, err
	}

	volunteer := &models.Volunteer{
		CommunityID:  communityID,
		MemberID:     memberID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Skills:       req.Skills,
		Availability: req.Availability,
		Status:       models.StatusActive,
	}
	if err := volunteer.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceVolunteer, volunteer.ID.String(), nil)
	return volunteer, nil
}

func (s *volunteerService) Get(ctx context.Context, id uuid.UUID) (*models.Volunteer, error) {
	return s.volunteerRepo.GetByID(ctx, id)
}

func (s *volunteerService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateVolunteerRequest) (*models.Volunteer, error) {
	volunteer, err := s.volunteerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&volunteer.Name, req.Name)
	applyString(&volunteer.Email, req.Email)
	applyString(&volunteer.Phone, req.Phone)
	applyString(&volunteer.Skills, req.Skills)
	applyString(&volunteer.Availability, req.Availability)
	applyString(&volunteer.Status, req.Status)

	if err := volunteer.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.volunteerRepo.Update(ctx, volunteer); err != nil {
		return nil, fmt.Errorf("failed to update volunteer: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourceVolunteer, volunteer.ID.String(), nil)
	return volunteer, nil
}

func (s *volunteerService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.volunteerRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourceVolunteer, id.String(), nil)
	return nil
}

func (s *volunteerService) List(ctx context.Context, filters models.VolunteerFilters) ([]models.Volunteer, int64, error) {
	return s.volunteerRepo.List(ctx, filters)
}
