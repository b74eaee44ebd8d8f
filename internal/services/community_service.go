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

// communityService implements CommunityServiceInterface
type communityService struct {
	communityRepo repositories.CommunityRepositoryInterface
	audit         AuditServiceInterface
}

// NewCommunityService creates a community service
func NewCommunityService(communityRepo repositories.CommunityRepositoryInterface, audit AuditServiceInterface) CommunityServiceInterface {
	return &communityService{
		communityRepo: communityRepo,
		audit:         audit,
	}
}

func (s *communityService) Create(ctx context.Context, actor models.Actor, req *dto.CreateCommunityRequest) (*models.Community, error) {
	community := &models.Community{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Status:       models.StatusActive,
	}
	if err := community.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.communityRepo.Create(ctx, community); err != nil {
		if errors.Is(err, repositories.ErrCommunityAlreadyExists) {
			return nil, ErrCommunityAlreadyExists
		}
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceCommunity, community.ID.String(),
		map[string]interface{}{"name": community.Name})
	return community, nil
}

func (s *communityService) Get(ctx context.Context, id uuid.UUID) (*models.Community, error) {
	return s.communityRepo.GetByID(ctx, id)
}

func (s *communityService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateCommunityRequest) (*models.Community, error) {
	community, err := s.communityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&community.Name, req.Name)
	applyString(&community.Description, req.Description)
	applyString(&community.Address, req.Address)
	applyString(&community.City, req.City)
	applyString(&community.State, req.State)
	applyString(&community.Country, req.Country)
	applyString(&community.ContactEmail, req.ContactEmail)
	applyString(&community.ContactPhone, req.ContactPhone)
	applyString(&community.Status, req.Status)

	if err := community.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.communityRepo.Update(ctx, community); err != nil {
		if errors.Is(err, repositories.ErrCommunityAlreadyExists) {
			return nil, ErrCommunityAlreadyExists
		}
		return nil, fmt.Errorf("failed to update community: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourceCommunity, community.ID.String(), nil)
	return community, nil
}

func (s *communityService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.communityRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourceCommunity, id.String(), nil)
	return nil
}

func (s *communityService) List(ctx context.Context, filters models.CommunityFilters) ([]models.Community, int64, error) {
	return s.communityRepo.List(ctx, filters)
}

// applyString overwrites dst when the patch field was sent
func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// requireCommunity parses a community ID and checks that it exists
func requireCommunity(ctx context.Context, repo repositories.CommunityRepositoryInterface, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalidInput(err)
	}

	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check community: %w", err)
	}
	if !exists {
		return uuid.Nil, ErrCommunityNotFound
	}

	return id, nil
}
