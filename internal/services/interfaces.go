package services

import (
	"context"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"

	"github.com/google/uuid"
)

// FinancialSummaryServiceInterface aggregates the ledger into totals
type FinancialSummaryServiceInterface interface {
	// GetSummary reads every live transaction in one query and reduces it
	// to income, expense and net totals.
	GetSummary(ctx context.Context, communityID *uuid.UUID) (*models.FinancialSummary, error)
	GetCategorySummaries(ctx context.Context, communityID *uuid.UUID) ([]models.CategorySummary, error)
}

// CommunityServiceInterface defines community management operations
type CommunityServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateCommunityRequest) (*models.Community, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Community, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateCommunityRequest) (*models.Community, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.CommunityFilters) ([]models.Community, int64, error)
}

// MemberServiceInterface defines member management operations
type MemberServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateMemberRequest) (*models.Member, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Member, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateMemberRequest) (*models.Member, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.MemberFilters) ([]models.Member, int64, error)
}

// ApplicationServiceInterface defines the membership application workflow
type ApplicationServiceInterface interface {
	Submit(ctx context.Context, req *dto.SubmitApplicationRequest, ipAddress, userAgent string) (*models.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Application, error)
	List(ctx context.Context, filters models.ApplicationFilters) ([]models.Application, int64, error)
	Approve(ctx context.Context, actor models.Actor, id uuid.UUID, note string) (*models.Application, *models.Member, error)
	Reject(ctx context.Context, actor models.Actor, id uuid.UUID, note string) (*models.Application, error)
}

// DonationServiceInterface defines donation operations
type DonationServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateDonationRequest) (*models.Donation, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Donation, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateDonationRequest) (*models.Donation, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.DonationFilters) ([]models.Donation, int64, error)
	Export(ctx context.Context, actor models.Actor, filters models.DonationFilters) ([]byte, error)
}

// ExpenseServiceInterface defines expense operations
type ExpenseServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateExpenseRequest) (*models.Expense, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, int64, error)
}

// VolunteerServiceInterface defines volunteer operations
type VolunteerServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateVolunteerRequest) (*models.Volunteer, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Volunteer, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateVolunteerRequest) (*models.Volunteer, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.VolunteerFilters) ([]models.Volunteer, int64, error)
}

// PujaServiceInterface defines puja scheduling operations
type PujaServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreatePujaRequest) (*models.Puja, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Puja, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdatePujaRequest) (*models.Puja, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.PujaFilters) ([]models.Puja, int64, error)
	Upcoming(ctx context.Context, communityID *uuid.UUID, limit int) ([]models.Puja, error)
	Cancel(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Puja, error)
	Complete(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Puja, error)
}

// TemplateServiceInterface defines communication template operations
type TemplateServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateTemplateRequest) (*models.CommunicationTemplate, error)
	Get(ctx context.Context, id uuid.UUID) (*models.CommunicationTemplate, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateTemplateRequest) (*models.CommunicationTemplate, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.TemplateFilters) ([]models.CommunicationTemplate, int64, error)
	Render(ctx context.Context, id uuid.UUID, variables map[string]string) (*dto.RenderTemplateResponse, error)
}

// TransactionServiceInterface defines manual ledger operations
type TransactionServiceInterface interface {
	Create(ctx context.Context, actor models.Actor, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// ReportServiceInterface renders spreadsheet exports
type ReportServiceInterface interface {
	DonationWorkbook(donations []models.Donation) ([]byte, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *models.CustomClaims, ipAddress, userAgent string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
	CreateUser(ctx context.Context, actor models.Actor, req *dto.CreateUserRequest) (*models.User, error)
	ListUsers(ctx context.Context, filters models.UserFilters) ([]models.User, int64, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuditServiceInterface records and lists admin actions
type AuditServiceInterface interface {
	Record(ctx context.Context, actor models.Actor, action, resource, resourceID string, metadata map[string]interface{})
	List(ctx context.Context, filters models.AuditLogFilters) ([]models.AuditLog, int64, error)
	PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type ActivityLoggerInterface interface {
	LogSummaryComputed(ctx context.Context, communityID *uuid.UUID, transactionCount int, durationMs int64)
	LogSummaryFailed(ctx context.Context, communityID *uuid.UUID, stage string, errorMsg string)
	LogLedgerPosted(ctx context.Context, source string, sourceID, transactionID uuid.UUID, amount string)
	LogLedgerRemoved(ctx context.Context, source string, sourceID uuid.UUID)
	LogScheduleConflict(ctx context.Context, pujaID uuid.UUID, conflictingIDs []uuid.UUID, location string)
	LogApplicationReviewed(ctx context.Context, applicationID uuid.UUID, decision string, reviewerID uuid.UUID)
	LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredRole string)
}

// DemoSeederInterface fills a development database with fake records
type DemoSeederInterface interface {
	Seed(ctx context.Context, communities int) (*dto.DemoSeedResult, error)
}
