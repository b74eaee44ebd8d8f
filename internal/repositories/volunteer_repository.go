package repositories

import (
	"context"

	"temple-admin/internal/models"

	"gorm.io/gorm"
)

// VolunteerRepository handles database operations for volunteers
type VolunteerRepository struct {
	crudRepository[models.Volunteer]
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) VolunteerRepositoryInterface {
	return &VolunteerRepository{
		crudRepository: newCRUDRepository[models.Volunteer](db, "volunteer", ErrVolunteerNotFound, nil),
	}
}

// List returns volunteers ordered by name. Skill matches a substring of the
// comma separated skills column.
func (r *VolunteerRepository) List(ctx context.Context, filters models.VolunteerFilters) ([]models.Volunteer, int64, error) {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ?", *filters.CommunityID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Skill != "" {
		query = query.Where(likeColumn("skills"), likePattern(filters.Skill))
	}

	return r.paginate(query, filters.ListOptions, "name ASC")
}
