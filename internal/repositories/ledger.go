package repositories

import (
	"errors"
	"fmt"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// syncLedgerEntry copies fresh onto the live transaction posted by the same
// source row, creating it if it was removed. It returns the transaction ID.
func syncLedgerEntry(tx *gorm.DB, fresh *models.Transaction) (uuid.UUID, error) {
	var entry models.Transaction
	err := tx.Where("source = ? AND source_id = ?", fresh.Source, *fresh.SourceID).First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(fresh).Error; err != nil {
			return uuid.Nil, fmt.Errorf("failed to recreate ledger transaction: %w", err)
		}
		return fresh.ID, nil
	case err != nil:
		return uuid.Nil, fmt.Errorf("failed to load ledger transaction: %w", err)
	}

	entry.Amount = fresh.Amount
	entry.Category = fresh.Category
	entry.Description = fresh.Description
	if fresh.Reference != "" {
		entry.Reference = fresh.Reference
	}
	entry.OccurredAt = fresh.OccurredAt
	if err := tx.Save(&entry).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to update ledger transaction: %w", err)
	}

	return entry.ID, nil
}
