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

// templateService implements TemplateServiceInterface
type templateService struct {
	templateRepo repositories.TemplateRepositoryInterface
	audit        AuditServiceInterface
}

// NewTemplateService creates the communication template service
func NewTemplateService(templateRepo repositories.TemplateRepositoryInterface, audit AuditServiceInterface) TemplateServiceInterface {
	return &templateService{
		templateRepo: templateRepo,
		audit:        audit,
	}
}

func (s *templateService) Create(ctx context.Context, actor models.Actor, req *dto.CreateTemplateRequest) (*models.CommunicationTemplate, error) {
	communityID, err := parseOptionalUUID(req.CommunityID)
	if err != nil {
		return nil, err
	}

	template := &models.CommunicationTemplate{
		CommunityID: communityID,
		Name:        req.Name,
		Channel:     req.Channel,
		Subject:     req.Subject,
		Body:        req.Body,
	}
	if err := template.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		if errors.Is(err, repositories.ErrTemplateAlreadyExists) {
			return nil, ErrTemplateAlreadyExists
		}
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceTemplate, template.ID.String(),
		map[string]interface{}{"name": template.Name, "channel": template.Channel})
	return template, nil
}

func (s *templateService) Get(ctx context.Context, id uuid.UUID) (*models.CommunicationTemplate, error) {
	return s.templateRepo.GetByID(ctx, id)
}

func (s *templateService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateTemplateRequest) (*models.CommunicationTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&template.Name, req.Name)
	applyString(&template.Channel, req.Channel)
	applyString(&template.Subject, req.Subject)
	applyString(&template.Body, req.Body)

	if err := template.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		if errors.Is(err, repositories.ErrTemplateAlreadyExists) {
			return nil, ErrTemplateAlreadyExists
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourceTemplate, template.ID.String(), nil)
	return template, nil
}

func (s *templateService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourceTemplate, id.String(), nil)
	return nil
}

func (s *templateService) List(ctx context.Context, filters models.TemplateFilters) ([]models.CommunicationTemplate, int64, error) {
	return s.templateRepo.List(ctx, filters)
}

// Render substitutes variables into the template. A *models.MissingVariablesError
// is returned when a placeholder has no value.
func (s *templateService) Render(ctx context.Context, id uuid.UUID, variables map[string]string) (*dto.RenderTemplateResponse, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subject, body, err := template.Render(variables)
	if err != nil {
		return nil, err
	}

	return &dto.RenderTemplateResponse{
		Channel: template.Channel,
		Subject: subject,
		Body:    body,
	}, nil
}
