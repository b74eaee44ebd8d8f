package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Community is a temple congregation. Every other record belongs to one.
type Community struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"type:varchar(200);uniqueIndex:idx_communities_name,where:deleted_at IS NULL;not null" json:"name"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Address      string         `gorm:"type:varchar(500)" json:"address,omitempty"`
	City         string         `gorm:"type:varchar(100)" json:"city,omitempty"`
	State        string         `gorm:"type:varchar(100)" json:"state,omitempty"`
	Country      string         `gorm:"type:varchar(100)" json:"country,omitempty"`
	ContactEmail string         `gorm:"type:varchar(255)" json:"contactEmail,omitempty"`
	ContactPhone string         `gorm:"type:varchar(30)" json:"contactPhone,omitempty"`
	Status       string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Community) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = StatusActive
	}
	return c.Validate()
}

func (c *Community) BeforeUpdate(tx *gorm.DB) error {
	return c.Validate()
}

func (c *Community) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("community name is required")
	}
	if !IsValidStatus(c.Status) {
		return fmt.Errorf("invalid community status: %s", c.Status)
	}
	return nil
}

func (c *Community) TableName() string {
	return "communities"
}

func IsValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
