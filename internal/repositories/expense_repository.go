package repositories

import (
	"context"
	"errors"
	"fmt"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseRepository handles database operations for expenses and the expense
// transactions they post to the ledger
type ExpenseRepository struct {
	crudRepository[models.Expense]
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{
		crudRepository: newCRUDRepository[models.Expense](db, "expense", ErrExpenseNotFound, nil),
	}
}

// CreateWithLedger inserts the expense and its ledger transaction atomically
func (r *ExpenseRepository) CreateWithLedger(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(expense).Error; err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}

		entry := expense.LedgerEntry()
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create ledger transaction: %w", err)
		}

		expense.TransactionID = &entry.ID
		if err := tx.Model(expense).Update("transaction_id", entry.ID).Error; err != nil {
			return fmt.Errorf("failed to link ledger transaction: %w", err)
		}

		return nil
	})
}

// UpdateWithLedger saves the expense and rewrites its ledger transaction to
// match. A missing ledger row is recreated.
func (r *ExpenseRepository) UpdateWithLedger(ctx context.Context, expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(expense).Error; err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}

		entryID, err := syncLedgerEntry(tx, expense.LedgerEntry())
		if err != nil {
			return err
		}
		if expense.TransactionID == nil || *expense.TransactionID != entryID {
			expense.TransactionID = &entryID
			return tx.Model(expense).Update("transaction_id", entryID).Error
		}

		return nil
	})
}

// DeleteWithLedger soft deletes the expense and the transaction it posted
func (r *ExpenseRepository) DeleteWithLedger(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Expense{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete expense: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrExpenseNotFound
		}

		if err := tx.Where("source = ? AND source_id = ?", models.TransactionSourceExpense, id).
			Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete ledger transaction: %w", err)
		}

		return nil
	})
}

// List returns expenses, most recent first
func (r *ExpenseRepository) List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ?", *filters.CommunityID)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.From != nil {
		query = query.Where("incurred_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("incurred_at <= ?", *filters.To)
	}

	return r.paginate(query, filters.ListOptions, "incurred_at DESC")
}
