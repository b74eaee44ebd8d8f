package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"temple-admin/internal/models"

	"gorm.io/gorm"
)

// RevokedTokenRepository tracks access tokens that were signed out early
type RevokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository creates a new revoked token repository
func NewRevokedTokenRepository(db *gorm.DB) RevokedTokenRepositoryInterface {
	return &RevokedTokenRepository{db: db}
}

// Create records a revoked token. Revoking the same token twice is not an error.
func (r *RevokedTokenRepository) Create(ctx context.Context, token *models.RevokedToken) error {
	if token == nil {
		return errors.New("revoked token cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsRevoked checks if a token ID has been revoked
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}

	return count > 0, nil
}

// DeleteExpired removes rows whose token has expired anyway
func (r *RevokedTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", time.Now().UTC()).Delete(&models.RevokedToken{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired revoked tokens: %w", result.Error)
	}

	return result.RowsAffected, nil
}
