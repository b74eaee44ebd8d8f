package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PujaStatusScheduled = "scheduled"
	PujaStatusCompleted = "completed"
	PujaStatusCancelled = "cancelled"

	DefaultPujaDurationMinutes = 60
	MaxPujaDurationMinutes     = 24 * 60
)

var ErrPujaClosed = errors.New("puja is no longer scheduled")

// Puja is a scheduled ceremony at one of the community's locations.
type Puja struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_pujas_community_schedule,priority:1" json:"communityId"`
	Name            string          `gorm:"type:varchar(200);not null" json:"name"`
	Deity           string          `gorm:"type:varchar(100)" json:"deity,omitempty"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	PriestName      string          `gorm:"type:varchar(200)" json:"priestName,omitempty"`
	Location        string          `gorm:"type:varchar(200);not null" json:"location"`
	ScheduledAt     time.Time       `gorm:"not null;index:idx_pujas_community_schedule,priority:2" json:"scheduledAt"`
	DurationMinutes int             `gorm:"not null;default:60" json:"durationMinutes"`
	Status          string          `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	SponsorName     string          `gorm:"type:varchar(200)" json:"sponsorName,omitempty"`
	Fee             decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"fee"`
	CreatedAt       time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updatedAt"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (p *Puja) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PujaStatusScheduled
	}
	if p.DurationMinutes == 0 {
		p.DurationMinutes = DefaultPujaDurationMinutes
	}
	return p.Validate()
}

func (p *Puja) BeforeUpdate(tx *gorm.DB) error {
	return p.Validate()
}

func (p *Puja) Validate() error {
	if p.CommunityID == uuid.Nil {
		return errors.New("community ID is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("puja name is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		return errors.New("puja location is required")
	}
	if p.ScheduledAt.IsZero() {
		return errors.New("scheduled time is required")
	}
	if p.DurationMinutes <= 0 || p.DurationMinutes > MaxPujaDurationMinutes {
		return fmt.Errorf("duration must be between 1 and %d minutes", MaxPujaDurationMinutes)
	}
	if p.Fee.IsNegative() {
		return errors.New("fee cannot be negative")
	}
	if !IsValidPujaStatus(p.Status) {
		return fmt.Errorf("invalid puja status: %s", p.Status)
	}
	return nil
}

func (p *Puja) EndsAt() time.Time {
	return p.ScheduledAt.Add(time.Duration(p.DurationMinutes) * time.Minute)
}

func (p *Puja) IsScheduled() bool {
	return p.Status == PujaStatusScheduled
}

// Overlaps reports whether both pujas are scheduled at the same location with
// intersecting time windows. Back-to-back slots do not overlap.
func (p *Puja) Overlaps(other *Puja) bool {
	if p.ID == other.ID || p.CommunityID != other.CommunityID {
		return false
	}
	if !p.IsScheduled() || !other.IsScheduled() {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(p.Location), strings.TrimSpace(other.Location)) {
		return false
	}
	return p.ScheduledAt.Before(other.EndsAt()) && other.ScheduledAt.Before(p.EndsAt())
}

func (p *Puja) Cancel() error {
	if !p.IsScheduled() {
		return ErrPujaClosed
	}
	p.Status = PujaStatusCancelled
	return nil
}

func (p *Puja) Complete() error {
	if !p.IsScheduled() {
		return ErrPujaClosed
	}
	p.Status = PujaStatusCompleted
	return nil
}

func (p *Puja) TableName() string {
	return "pujas"
}

func IsValidPujaStatus(status string) bool {
	switch status {
	case PujaStatusScheduled, PujaStatusCompleted, PujaStatusCancelled:
		return true
	default:
		return false
	}
}
