package repositories

import (
	"context"
	"time"

	"temple-admin/internal/models"

	"github.com/google/uuid"
)

// CommunityRepositoryInterface defines the contract for community repository operations
type CommunityRepositoryInterface interface {
	Create(ctx context.Context, community *models.Community) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Community, error)
	Update(ctx context.Context, community *models.Community) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.CommunityFilters) ([]models.Community, int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// MemberRepositoryInterface defines the contract for member repository operations
type MemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.MemberFilters) ([]models.Member, int64, error)
}

// ApplicationRepositoryInterface defines the contract for membership application operations
type ApplicationRepositoryInterface interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	Update(ctx context.Context, application *models.Application) error
	List(ctx context.Context, filters models.ApplicationFilters) ([]models.Application, int64, error)
	Approve(ctx context.Context, id, reviewerID uuid.UUID, note string) (*models.Application, *models.Member, error)
}

// DonationRepositoryInterface defines the contract for donation repository operations.
// Donations are written together with their ledger transaction.
type DonationRepositoryInterface interface {
	CreateWithLedger(ctx context.Context, donation *models.Donation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Donation, error)
	UpdateWithLedger(ctx context.Context, donation *models.Donation) error
	DeleteWithLedger(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.DonationFilters) ([]models.Donation, int64, error)
	ListAll(ctx context.Context, filters models.DonationFilters) ([]models.Donation, error)
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	CreateWithLedger(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	UpdateWithLedger(ctx context.Context, expense *models.Expense) error
	DeleteWithLedger(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, int64, error)
}

// VolunteerRepositoryInterface defines the contract for volunteer repository operations
type VolunteerRepositoryInterface interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Volunteer, error)
	Update(ctx context.Context, volunteer *models.Volunteer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.VolunteerFilters) ([]models.Volunteer, int64, error)
}

// PujaRepositoryInterface defines the contract for puja schedule operations
type PujaRepositoryInterface interface {
	Create(ctx context.Context, puja *models.Puja) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Puja, error)
	Update(ctx context.Context, puja *models.Puja) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.PujaFilters) ([]models.Puja, int64, error)
	FindOverlapping(ctx context.Context, puja *models.Puja) ([]models.Puja, error)
	ListUpcoming(ctx context.Context, communityID *uuid.UUID, from time.Time, limit int) ([]models.Puja, error)
}

// TemplateRepositoryInterface defines the contract for communication template operations
type TemplateRepositoryInterface interface {
	Create(ctx context.Context, template *models.CommunicationTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CommunicationTemplate, error)
	GetByName(ctx context.Context, name string) (*models.CommunicationTemplate, error)
	Update(ctx context.Context, template *models.CommunicationTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.TemplateFilters) ([]models.CommunicationTemplate, int64, error)
}

// TransactionRepositoryInterface defines the contract for ledger operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)

	// ListAmounts reads the {type, amount} projection of every live
	// transaction in one query, optionally scoped to a community.
	ListAmounts(ctx context.Context, communityID *uuid.UUID) ([]models.TransactionAmount, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	List(ctx context.Context, filters models.UserFilters) ([]models.User, int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filters models.AuditLogFilters) ([]models.AuditLog, int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}

// RevokedTokenRepositoryInterface defines the contract for signed-out token operations
type RevokedTokenRepositoryInterface interface {
	Create(ctx context.Context, token *models.RevokedToken) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
