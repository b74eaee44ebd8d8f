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
	MemberRoleMember        = "member"
	MemberRoleTrustee       = "trustee"
	MemberRolePriest        = "priest"
	MemberRoleVolunteerLead = "volunteer_lead"
)

type Member struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_members_community_email,priority:1,where:deleted_at IS NULL" json:"communityId"`
	FirstName   string         `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName    string         `gorm:"type:varchar(100);not null" json:"lastName"`
	Email       string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_members_community_email,priority:2,where:deleted_at IS NULL" json:"email"`
	Phone       string         `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Role        string         `gorm:"type:varchar(30);not null;default:'member'" json:"role"`
	Status      string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	JoinedAt    time.Time      `gorm:"not null" json:"joinedAt"`
	CreatedAt   time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Community *Community `gorm:"foreignKey:CommunityID" json:"-"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Role == "" {
		m.Role = MemberRoleMember
	}
	if m.Status == "" {
		m.Status = StatusActive
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now().UTC()
	}
	m.Email = NormalizeEmail(m.Email)
	return m.Validate()
}

func (m *Member) BeforeUpdate(tx *gorm.DB) error {
	return m.Validate()
}

func (m *Member) Validate() error {
	if m.CommunityID == uuid.Nil {
		return errors.New("community ID is required")
	}
	if strings.TrimSpace(m.FirstName) == "" || strings.TrimSpace(m.LastName) == "" {
		return errors.New("first and last name are required")
	}
	if !emailRegex.MatchString(m.Email) {
		return errors.New("invalid email format")
	}
	if !IsValidMemberRole(m.Role) {
		return fmt.Errorf("invalid member role: %s", m.Role)
	}
	if !IsValidStatus(m.Status) {
		return fmt.Errorf("invalid member status: %s", m.Status)
	}
	return nil
}

func (m *Member) FullName() string {
	return fmt.Sprintf("%s %s", m.FirstName, m.LastName)
}

func (m *Member) TableName() string {
	return "members"
}

func IsValidMemberRole(role string) bool {
	switch role {
	case MemberRoleMember, MemberRoleTrustee, MemberRolePriest, MemberRoleVolunteerLead:
		return true
	default:
		return false
	}
}
