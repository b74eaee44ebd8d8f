package repositories

import (
	"context"
	"fmt"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository handles database operations for ledger transactions
type TransactionRepository struct {
	crudRepository[models.Transaction]
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{
		crudRepository: newCRUDRepository[models.Transaction](db, "transaction", ErrTransactionNotFound, nil),
	}
}

// List returns transactions, most recent first
func (r *TransactionRepository) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ?", *filters.CommunityID)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}
	if filters.From != nil {
		query = query.Where("occurred_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("occurred_at <= ?", *filters.To)
	}

	return r.paginate(query, filters.ListOptions, "occurred_at DESC, created_at DESC")
}

// ListAmounts reads the amount projection of every live transaction. Amounts
// are returned as stored; parsing is left to the caller.
func (r *TransactionRepository) ListAmounts(ctx context.Context, communityID *uuid.UUID) ([]models.TransactionAmount, error) {
	query := r.model(ctx).Select("id, type, amount, category")
	if communityID != nil {
		query = query.Where("community_id = ?", *communityID)
	}

	amounts := make([]models.TransactionAmount, 0)
	if err := query.Order("occurred_at ASC, id ASC").Scan(&amounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list transaction amounts: %w", err)
	}

	return amounts, nil
}
