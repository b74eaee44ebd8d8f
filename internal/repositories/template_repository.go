package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"temple-admin/internal/models"

	"gorm.io/gorm"
)

// TemplateRepository handles database operations for communication templates
type TemplateRepository struct {
	crudRepository[models.CommunicationTemplate]
}

// NewTemplateRepository creates a new communication template repository
func NewTemplateRepository(db *gorm.DB) TemplateRepositoryInterface {
	return &TemplateRepository{
		crudRepository: newCRUDRepository[models.CommunicationTemplate](db, "communication template", ErrTemplateNotFound, ErrTemplateAlreadyExists),
	}
}

// GetByName retrieves a template by its unique name
func (r *TemplateRepository) GetByName(ctx context.Context, name string) (*models.CommunicationTemplate, error) {
	var template models.CommunicationTemplate
	if err := r.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template by name: %w", err)
	}

	return &template, nil
}

// List returns templates ordered by name. A community filter also matches
// the shared templates that belong to no community.
func (r *TemplateRepository) List(ctx context.Context, filters models.TemplateFilters) ([]models.CommunicationTemplate, int64, error) {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ? OR community_id IS NULL", *filters.CommunityID)
	}
	if filters.Channel != "" {
		query = query.Where("channel = ?", filters.Channel)
	}

	return r.paginate(query, filters.ListOptions, "name ASC")
}
