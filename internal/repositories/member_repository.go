package repositories

import (
	"context"

	"temple-admin/internal/models"

	"gorm.io/gorm"
)

// MemberRepository handles database operations for members
type MemberRepository struct {
	crudRepository[models.Member]
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepositoryInterface {
	return &MemberRepository{
		crudRepository: newCRUDRepository[models.Member](db, "member", ErrMemberNotFound, ErrMemberAlreadyExists),
	}
}

// List returns members ordered by last name, first name
func (r *MemberRepository) List(ctx context.Context, filters models.MemberFilters) ([]models.Member, int64, error) {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ?", *filters.CommunityID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Role != "" {
		query = query.Where("role = ?", filters.Role)
	}
	if filters.Query != "" {
		pattern := likePattern(filters.Query)
		query = query.Where(
			likeColumn("first_name")+" OR "+likeColumn("last_name")+" OR "+likeColumn("email"),
			pattern, pattern, pattern,
		)
	}

	return r.paginate(query, filters.ListOptions, "last_name ASC, first_name ASC")
}
