package repositories

import (
	"context"
	"errors"
	"fmt"

	"temple-admin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DonationRepository handles database operations for donations and the income
// transactions they post to the ledger
type DonationRepository struct {
	crudRepository[models.Donation]
}

// NewDonationRepository creates a new donation repository
func NewDonationRepository(db *gorm.DB) DonationRepositoryInterface {
	return &DonationRepository{
		crudRepository: newCRUDRepository[models.Donation](db, "donation", ErrDonationNotFound, nil),
	}
}

// CreateWithLedger inserts the donation and its income transaction atomically
// and links the two.
func (r *DonationRepository) CreateWithLedger(ctx context.Context, donation *models.Donation) error {
	if donation == nil {
		return errors.New("donation cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return fmt.Errorf("failed to create donation: %w", err)
		}

		entry := donation.LedgerEntry()
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create ledger transaction: %w", err)
		}

		donation.TransactionID = &entry.ID
		if err := tx.Model(donation).Update("transaction_id", entry.ID).Error; err != nil {
			return fmt.Errorf("failed to link ledger transaction: %w", err)
		}

		return nil
	})
}

// UpdateWithLedger saves the donation and rewrites the category and
// description of its ledger transaction
func (r *DonationRepository) UpdateWithLedger(ctx context.Context, donation *models.Donation) error {
	if donation == nil {
		return errors.New("donation cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(donation).Error; err != nil {
			return fmt.Errorf("failed to update donation: %w", err)
		}

		entryID, err := syncLedgerEntry(tx, donation.LedgerEntry())
		if err != nil {
			return err
		}
		if donation.TransactionID == nil || *donation.TransactionID != entryID {
			donation.TransactionID = &entryID
			return tx.Model(donation).Update("transaction_id", entryID).Error
		}

		return nil
	})
}

// DeleteWithLedger soft deletes the donation and the transaction it posted
func (r *DonationRepository) DeleteWithLedger(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Donation{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete donation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrDonationNotFound
		}

		if err := tx.Where("source = ? AND source_id = ?", models.TransactionSourceDonation, id).
			Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete ledger transaction: %w", err)
		}

		return nil
	})
}

// List returns donations, most recent first
func (r *DonationRepository) List(ctx context.Context, filters models.DonationFilters) ([]models.Donation, int64, error) {
	return r.paginate(r.filtered(ctx, filters), filters.ListOptions, "donated_at DESC")
}

// ListAll returns every donation matching the filters, without pagination
func (r *DonationRepository) ListAll(ctx context.Context, filters models.DonationFilters) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.filtered(ctx, filters).Order("donated_at ASC").Find(&donations).Error; err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}
	return donations, nil
}

func (r *DonationRepository) filtered(ctx context.Context, filters models.DonationFilters) *gorm.DB {
	query := r.model(ctx)

	if filters.CommunityID != nil {
		query = query.Where("community_id = ?", *filters.CommunityID)
	}
	if filters.MemberID != nil {
		query = query.Where("member_id = ?", *filters.MemberID)
	}
	if filters.Purpose != "" {
		query = query.Where("purpose = ?", filters.Purpose)
	}
	if filters.From != nil {
		query = query.Where("donated_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("donated_at <= ?", *filters.To)
	}

	return query
}
