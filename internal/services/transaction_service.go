package services

import (
	"context"
	"fmt"

	"temple-admin/internal/dto"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
)

// transactionService implements TransactionServiceInterface. Only manual
// entries can be changed here; donation and expense rows follow their source.
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	audit           AuditServiceInterface
	metrics         MetricsRecorderInterface
	activity        ActivityLoggerInterface
}

// NewTransactionService creates the manual ledger service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		audit:           audit,
		metrics:         metrics,
		activity:        activity,
	}
}

func (s *transactionService) Create(ctx context.Context, actor models.Actor, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	communityID, err := parseOptionalUUID(req.CommunityID)
	if err != nil {
		return nil, err
	}

	amount, err := models.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		ID:          uuid.New(),
		CommunityID: communityID,
		Type:        req.Type,
		Amount:      amount.StringFixed(models.MaxAmountScale),
		Category:    req.Category,
		Description: req.Description,
		Reference:   req.Reference,
		Source:      models.TransactionSourceManual,
	}
	if req.OccurredAt != nil {
		transaction.OccurredAt = req.OccurredAt.UTC()
	}
	if err := transaction.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.metrics.IncrementCounter("ledger_entry", map[string]string{
		"source": models.TransactionSourceManual,
		"type":   transaction.Type,
	})
	s.activity.LogLedgerPosted(ctx, models.TransactionSourceManual, transaction.ID, transaction.ID, transaction.Amount)
	s.audit.Record(ctx, actor, models.AuditActionCreate, models.AuditResourceTransaction, transaction.ID.String(),
		map[string]interface{}{"type": transaction.Type, "amount": transaction.Amount})
	return transaction, nil
}

func (s *transactionService) Get(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

func (s *transactionService) Update(ctx context.Context, actor models.Actor, id uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.manual(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&transaction.Type, req.Type)
	applyString(&transaction.Category, req.Category)
	applyString(&transaction.Description, req.Description)
	if req.Amount != nil {
		amount, err := models.ParseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		transaction.Amount = amount.StringFixed(models.MaxAmountScale)
	}
	if req.OccurredAt != nil {
		transaction.OccurredAt = req.OccurredAt.UTC()
	}

	if err := transaction.Validate(); err != nil {
		return nil, invalidInput(err)
	}

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.audit.Record(ctx, actor, models.AuditActionUpdate, models.AuditResourceTransaction, transaction.ID.String(), nil)
	return transaction, nil
}

func (s *transactionService) Delete(ctx context.Context, actor models.Actor, id uuid.UUID) error {
	if _, err := s.manual(ctx, id); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.LogLedgerRemoved(ctx, models.TransactionSourceManual, id)
	s.audit.Record(ctx, actor, models.AuditActionDelete, models.AuditResourceTransaction, id.String(), nil)
	return nil
}

func (s *transactionService) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	return s.transactionRepo.List(ctx, filters)
}

func (s *transactionService) manual(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !transaction.IsManual() {
		return nil, ErrTransactionReadOnly
	}
	return transaction, nil
}
