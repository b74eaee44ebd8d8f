package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevokedToken records an access token that was signed out before it expired.
type RevokedToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
	RevokedAt time.Time `gorm:"not null" json:"revokedAt"`
}

// IsExpired reports whether the underlying token would be rejected anyway, at
// which point the row can be purged.
func (rt *RevokedToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

func (rt *RevokedToken) TableName() string {
	return "revoked_tokens"
}

func (rt *RevokedToken) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	if rt.RevokedAt.IsZero() {
		rt.RevokedAt = time.Now().UTC()
	}
	return nil
}
