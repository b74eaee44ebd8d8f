package repositories

import (
	"context"
	"errors"
	"fmt"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationRepository handles database operations for membership applications
type ApplicationRepository struct {
	crudRepository[models.Application]
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepositoryInterface {
	return &ApplicationRepository{
		crudRepository: newCRUDRepository[models.Application](db, "application", ErrApplicationNotFound, nil),
	}
}

// List returns applications, newest first
func (r *ApplicationRepository) List(ctx context.Context, filters models.ApplicationFilters) ([]models.Application, int64, error) {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ?", *filters.CommunityID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	return r.paginate(query, filters.ListOptions, "created_at DESC")
}

// Approve locks the application, creates the member it describes and marks
// the application approved, all in one database transaction.
func (r *ApplicationRepository) Approve(ctx context.Context, id, reviewerID uuid.UUID, note string) (*models.Application, *models.Member, error) {
	var (
		application models.Application
		member      *models.Member
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&application, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return fmt.Errorf("failed to lock application: %w", err)
		}

		if !application.IsPending() {
			return models.ErrApplicationReviewed
		}

		member = application.ToMember()
		if err := tx.Create(member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrMemberAlreadyExists
			}
			return fmt.Errorf("failed to create member: %w", err)
		}

		if err := application.Approve(reviewerID, member.ID, note); err != nil {
			return err
		}

		if err := tx.Save(&application).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &application, member, nil
}
