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
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

var ErrApplicationReviewed = errors.New("application has already been reviewed")

// Application is a membership request submitted through the public form.
type Application struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CommunityID uuid.UUID      `gorm:"type:uuid;not null;index" json:"communityId"`
	FirstName   string         `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName    string         `gorm:"type:varchar(100);not null" json:"lastName"`
	Email       string         `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string         `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Message     string         `gorm:"type:text" json:"message,omitempty"`
	Status      string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ReviewedBy  *uuid.UUID     `gorm:"type:uuid" json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time     `json:"reviewedAt,omitempty"`
	ReviewNote  string         `gorm:"type:text" json:"reviewNote,omitempty"`
	MemberID    *uuid.UUID     `gorm:"type:uuid" json:"memberId,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	a.Email = NormalizeEmail(a.Email)
	return a.Validate()
}

func (a *Application) BeforeUpdate(tx *gorm.DB) error {
	return a.Validate()
}

func (a *Application) Validate() error {
	if a.CommunityID == uuid.Nil {
		return errors.New("community ID is required")
	}
	if strings.TrimSpace(a.FirstName) == "" || strings.TrimSpace(a.LastName) == "" {
		return errors.New("first and last name are required")
	}
	if !emailRegex.MatchString(a.Email) {
		return errors.New("invalid email format")
	}
	switch a.Status {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
	default:
		return fmt.Errorf("invalid application status: %s", a.Status)
	}
	return nil
}

func (a *Application) IsPending() bool {
	return a.Status == ApplicationStatusPending
}

// Approve marks the application approved and links the member created from it.
func (a *Application) Approve(reviewerID, memberID uuid.UUID, note string) error {
	if !a.IsPending() {
		return ErrApplicationReviewed
	}
	now := time.Now().UTC()
	a.Status = ApplicationStatusApproved
	a.ReviewedBy = &reviewerID
	a.ReviewedAt = &now
	a.ReviewNote = note
	a.MemberID = &memberID
	return nil
}

func (a *Application) Reject(reviewerID uuid.UUID, note string) error {
	if !a.IsPending() {
		return ErrApplicationReviewed
	}
	now := time.Now().UTC()
	a.Status = ApplicationStatusRejected
	a.ReviewedBy = &reviewerID
	a.ReviewedAt = &now
	a.ReviewNote = note
	return nil
}

// ToMember builds the member record an approval creates.
func (a *Application) ToMember() *Member {
	return &Member{
		ID:          uuid.New(),
		CommunityID: a.CommunityID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Phone:       a.Phone,
		Role:        MemberRoleMember,
		Status:      StatusActive,
		JoinedAt:    time.Now().UTC(),
	}
}

func (a *Application) TableName() string {
	return "applications"
}
