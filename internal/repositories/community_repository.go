package repositories

import (
	"context"
	"fmt"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityRepository handles database operations for communities
type CommunityRepository struct {
	crudRepository[models.Community]
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(db *gorm.DB) CommunityRepositoryInterface {
	return &CommunityRepository{
		crudRepository: newCRUDRepository[models.Community](db, "community", ErrCommunityNotFound, ErrCommunityAlreadyExists),
	}
}

// List returns communities ordered by name
func (r *CommunityRepository) List(ctx context.Context, filters models.CommunityFilters) ([]models.Community, int64, error) {
	query := r.model(ctx)

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Query != "" {
		pattern := likePattern(filters.Query)
		query = query.Where(likeColumn("name")+" OR "+likeColumn("city"), pattern, pattern)
	}

	return r.paginate(query, filters.ListOptions, "name ASC")
}

// Exists reports whether a live community has the given ID
func (r *CommunityRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.model(ctx).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check community: %w", err)
	}
	return count > 0, nil
}
