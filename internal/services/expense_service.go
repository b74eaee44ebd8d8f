package services

import (
	"context"
	"fmt"
	"time"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
)

// expenseService implements ExpenseServiceInterface
type expenseService struct {
	expenseRepo   repositories.ExpenseRepositoryInterface
	communityRepo repositories.CommunityRepositoryInterface
	audit         AuditServiceInterface
	metrics       MetricsRecorderInterface
	activity      ActivityLoggerInterface
}

// NewExpenseService creates an expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	communityRepo repositories.CommunityRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo:   expenseRepo,
		communityRepo: communityRepo,
		audit:         audit,
		metrics:       metrics,
		activity:      activity,
	}
}

func (s *expenseService) Create(ctx context.Context, actor models.Actor, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	communityID, err := requireCommunity(ctx, s.communityRepo, req.CommunityID)
	if err != nil {
		return nil, err
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		CommunityID: communityID,
		Category:    req.Category,
		Vendor:      req.Vendor,
		Description: req.Description,
		Amount:      amount,
		IncurredAt:  time.Now().UTC(),
		ApprovedBy:  actor.AuditUserID(),
	}
	if expense.Category == "" {
		expense.Category = models.ExpenseCategoryOther
	}
	if req.IncurredAt != nil {
		expense.IncurredAt = req.IncurredAt.UTC()
	}
	if err := expense.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.expenseRepo.CreateWithLedger(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.metrics.IncrementCounter("ledger_entry", map[string]string{
		"source": models.TransactionSourceExpense,
		"type":   models.TransactionTypeExpense,
	})
	if expense.TransactionID != nil {
		s.activity.LogLedgerPosted(ctx, models.TransactionSourceExpense, expense.ID, *expense.TransactionID,
			expense.Amount.StringFixed(models.MaxAmountScale))
	}
	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceExpense, expense.ID.String(),
		map[string]interface{}{"amount": expense.Amount.StringFixed(models.MaxAmountScale), "category": expense.Category})
	return expense, nil
}

func (s *expenseService) Get(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	return s.expenseRepo.GetByID(ctx, id)
}

func (s *expenseService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&expense.Category, req.Category)
	applyString(&expense.Vendor, req.Vendor)
	applyString(&expense.Description, req.Description)
	if req.Amount != nil {
		amount, err := models.ParseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		expense.Amount = amount
	}
	if req.IncurredAt != nil {
		expense.IncurredAt = req.IncurredAt.UTC()
	}

	if err := expense.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.expenseRepo.UpdateWithLedger(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourceExpense, expense.ID.String(), nil)
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if err := s.expenseRepo.DeleteWithLedger(ctx, id); err != nil {
		return err
	}

	s.activity.LogLedgerRemoved(ctx, models.TransactionSourceExpense, id)
	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourceExpense, id.String(), nil)
	return nil
}

func (s *expenseService) List(ctx context.Context, filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	return s.expenseRepo.List(ctx, filters)
}
