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

// memberService implements MemberServiceInterface
type memberService struct {
	memberRepo    repositories.MemberRepositoryInterface
	communityRepo repositories.CommunityRepositoryInterface
	audit         AuditServiceInterface
}

// NewMemberService creates a member service
func NewMemberService(
	memberRepo repositories.MemberRepositoryInterface,
	communityRepo repositories.CommunityRepositoryInterface,
	audit AuditServiceInterface,
) MemberServiceInterface {
	return &memberService{
		memberRepo:    memberRepo,
		communityRepo: communityRepo,
		audit:         audit,
	}
}

func (s *memberService) Create(ctx context.Context, actor models.Actor, req *dto.CreateMemberRequest) (*models.Member, error) {
	communityID, err := requireCommunity(ctx, s.communityRepo, req.CommunityID)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		CommunityID: communityID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       models.NormalizeEmail(req.Email),
		Phone:       req.Phone,
		Role:        req.Role,
		Status:      models.StatusActive,
	}
	if member.Role == "" {
		member.Role = models.MemberRoleMember
	}
	if err := member.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrMemberAlreadyExists) {
			return nil, ErrMemberAlreadyExists
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceMember, member.ID.String(),
		map[string]interface{}{"community_id": communityID.String()})
	return member, nil
}

func (s *memberService) Get(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *memberService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateMemberRequest) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&member.FirstName, req.FirstName)
	applyString(&member.LastName, req.LastName)
	applyString(&member.Phone, req.Phone)
	applyString(&member.Role, req.Role)
	applyString(&member.Status, req.Status)
	if req.Email != nil {
		member.Email = models.NormalizeEmail(*req.Email)
	}

	if err := member.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrMemberAlreadyExists) {
			return nil, ErrMemberAlreadyExists
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourceMember, member.ID.String(), nil)
	return member, nil
}

func (s *memberService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.memberRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourceMember, id.String(), nil)
	return nil
}

func (s *memberService) List(ctx context.Context, filters models.MemberFilters) ([]models.Member, int64, error) {
	return s.memberRepo.List(ctx, filters)
}
