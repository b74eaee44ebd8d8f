package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListOptions carries pagination for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// Normalize clamps the limit into [1, MaxListLimit] and the offset to >= 0.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

type CommunityFilters struct {
	ListOptions
	Status string
	Query  string
}

type MemberFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	Status      string
	Role        string
	Query       string
}

type ApplicationFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	Status      string
}

type DonationFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	MemberID    *uuid.UUID
	Purpose     string
	From        *time.Time
	To          *time.Time
}

type ExpenseFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	Category    string
	From        *time.Time
	To          *time.Time
}

type VolunteerFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	Status      string
	Skill       string
}

type PujaFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	Status      string
	From        *time.Time
	To          *time.Time
}

type TemplateFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	Channel     string
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	ListOptions
	CommunityID *uuid.UUID
	Type        string
	Category    string
	Source      string
	From        *time.Time
	To          *time.Time
}

type UserFilters struct {
	ListOptions
	Role string
}

type AuditLogFilters struct {
	ListOptions
	UserID   *uuid.UUID
	Resource string
	Action   string
}
