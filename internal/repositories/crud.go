package repositories

import (
	"context"
	"errors"
	"fmt"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// crudRepository implements the single-row operations shared by every
// resource. Embedders supply the resource name and sentinel errors.
type crudRepository[T any] struct {
	db        *gorm.DB
	resource  string
	notFound  error
	duplicate error
}

func newCRUDRepository[T any](db *gorm.DB, resource string, notFound, duplicate error) crudRepository[T] {
	return crudRepository[T]{
		db:        db,
		resource:  resource,
		notFound:  notFound,
		duplicate: duplicate,
	}
}

// Create inserts a new row
func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("%s cannot be nil", r.resource)
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return r.translate("create", err)
	}

	return nil
}

// GetByID retrieves a live row by its ID
func (r *crudRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, r.translate("get", err)
	}

	return &entity, nil
}

// Update writes every column of the row
func (r *crudRepository[T]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("%s cannot be nil", r.resource)
	}

	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return r.translate("update", err)
	}

	return nil
}

// Delete soft deletes a row
func (r *crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return r.translate("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}

	return nil
}

// paginate counts the filtered query and loads one page of it
func (r *crudRepository[T]) paginate(query *gorm.DB, opts models.ListOptions, order string) ([]T, int64, error) {
	opts = opts.Normalize()
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s rows: %w", r.resource, err)
	}

	items := make([]T, 0, opts.Limit)
	if err := query.Order(order).Offset(opts.Offset).Limit(opts.Limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list %s rows: %w", r.resource, err)
	}

	return items, total, nil
}

func (r *crudRepository[T]) model(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

func (r *crudRepository[T]) translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && r.notFound != nil:
		return r.notFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && r.duplicate != nil:
		return r.duplicate
	default:
		return fmt.Errorf("failed to %s %s: %w", op, r.resource, err)
	}
}

// likePattern builds a case-insensitive substring pattern for likeColumn.
func likePattern(q string) string {
	return "%" + escapeLike(q) + "%"
}

func likeColumn(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}
