package repositories

import (
	"context"
	"fmt"
	"time"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PujaRepository handles database operations for the puja schedule
type PujaRepository struct {
	crudRepository[models.Puja]
}

// NewPujaRepository creates a new puja repository
func NewPujaRepository(db *gorm.DB) PujaRepositoryInterface {
	return &PujaRepository{
		crudRepository: newCRUDRepository[models.Puja](db, "puja", ErrPujaNotFound, nil),
	}
}

// List returns pujas in schedule order
func (r *PujaRepository) List(ctx context.Context, filters models.PujaFilters) ([]models.Puja, int64, error) {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ?", *filters.CommunityID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.From != nil {
		query = query.Where("scheduled_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("scheduled_at <= ?", *filters.To)
	}

	return r.paginate(query, filters.ListOptions, "scheduled_at ASC")
}

// FindOverlapping returns the scheduled pujas that clash with puja. The query
// narrows candidates to the window a puja of maximum length could reach; the
// exact location and interval check is done in Go.
func (r *PujaRepository) FindOverlapping(ctx context.Context, puja *models.Puja) ([]models.Puja, error) {
	earliest := puja.ScheduledAt.Add(-time.Duration(models.MaxPujaDurationMinutes) * time.Minute)

	var candidates []models.Puja
	err := r.db.WithContext(ctx).
		Where("community_id = ? AND status = ?", puja.CommunityID, models.PujaStatusScheduled).
		Where("scheduled_at < ? AND scheduled_at > ?", puja.EndsAt(), earliest).
		Where("id <> ?", puja.ID).
		Order("scheduled_at ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping pujas: %w", err)
	}

	clashes := make([]models.Puja, 0, len(candidates))
	for i := range candidates {
		if puja.Overlaps(&candidates[i]) {
			clashes = append(clashes, candidates[i])
		}
	}

	return clashes, nil
}

// ListUpcoming returns scheduled pujas starting at or after from
func (r *PujaRepository) ListUpcoming(ctx context.Context, communityID *uuid.UUID, from time.Time, limit int) ([]models.Puja, error) {
	limit = models.ListOptions{Limit: limit}.Normalize().Limit

	query := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at >= ?", models.PujaStatusScheduled, from)
	if communityID != nil {
		query = query.Where("community_id = ?", *communityID)
	}

	var pujas []models.Puja
	if err := query.Order("scheduled_at ASC").Limit(limit).Find(&pujas).Error; err != nil {
		return nil, fmt.Errorf("failed to list upcoming pujas: %w", err)
	}

	return pujas, nil
}
