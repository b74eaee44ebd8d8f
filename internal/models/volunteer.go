package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Volunteer struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"communityId"`
	MemberID     *uuid.UUID     `gorm:"type:uuid" json:"memberId,omitempty"`
	Name         string         `gorm:"type:varchar(200);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone        string         `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Skills       string         `gorm:"type:text" json:"skills,omitempty"`
	Availability string         `gorm:"type:varchar(200)" json:"availability,omitempty"`
	Status       string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt    time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (v *Volunteer) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.Status == "" {
		v.Status = StatusActive
	}
	return v.Validate()
}

func (v *Volunteer) BeforeUpdate(tx *gorm.DB) error {
	return v.Validate()
}

func (v *Volunteer) Validate() error {
	if v.CommunityID == uuid.Nil {
		return errors.New("community ID is required")
	}
	if strings.TrimSpace(v.Name) == "" {
		return errors.New("volunteer name is required")
	}
	if v.Email != "" && !emailRegex.MatchString(v.Email) {
		return errors.New("invalid email format")
	}
	if !IsValidStatus(v.Status) {
		return fmt.Errorf("invalid volunteer status: %s", v.Status)
	}
	return nil
}

// SkillList splits the comma separated skills column.
func (v *Volunteer) SkillList() []string {
	if strings.TrimSpace(v.Skills) == "" {
		return nil
	}
	parts := strings.Split(v.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func (v *Volunteer) TableName() string {
	return "volunteers"
}
