package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"temple-admin/internal/models"
	"temple-admin/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialSummaryService reduces the ledger into income and expense totals
type FinancialSummaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	activity        ActivityLoggerInterface
}

// NewFinancialSummaryService creates a new financial summary service
// kind label values of summary_request
const (
	summaryKindTotals     = "totals"
	summaryKindCategories = "categories"
)

func NewFinancialSummaryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	activity ActivityLoggerInterface,
) FinancialSummaryServiceInterface {
	return &FinancialSummaryService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
		activity:        activity,
	}
}

// GetSummary returns the totals of every live transaction, optionally scoped
// to one community. The result reflects a single read; nothing is cached.
func (s *FinancialSummaryService) GetSummary(ctx context.Context, communityID *uuid.UUID) (*models.FinancialSummary, error) {
	start := time.Now()

	rows, err := s.transactionRepo.ListAmounts(ctx, communityID)
	if err != nil {
		s.recordFailure(ctx, communityID, summaryKindTotals, "retrieval", err)
		return nil, fmt.Errorf("%w: %v", ErrSummaryRetrieval, err)
	}

	summary, err := SummarizeTransactions(rows)
	if err != nil {
		s.recordFailure(ctx, communityID, summaryKindTotals, "computation", err)
		return nil, err
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter("summary_request", map[string]string{"kind": summaryKindTotals, "status": "success"})
	s.metrics.RecordProcessingTime("summary", duration)
	s.activity.LogSummaryComputed(ctx, communityID, summary.TransactionCount, duration.Milliseconds())

	return summary, nil
}

// GetCategorySummaries returns per category totals from the same single read
func (s *FinancialSummaryService) GetCategorySummaries(ctx context.Context, communityID *uuid.UUID) ([]models.CategorySummary, error) {
	rows, err := s.transactionRepo.ListAmounts(ctx, communityID)
	if err != nil {
		s.recordFailure(ctx, communityID, summaryKindCategories, "retrieval", err)
		return nil, fmt.Errorf("%w: %v", ErrSummaryRetrieval, err)
	}

	summaries, err := SummarizeByCategory(rows)
	if err != nil {
		s.recordFailure(ctx, communityID, summaryKindCategories, "computation", err)
		return nil, err
	}

	s.metrics.IncrementCounter("summary_request", map[string]string{"kind": summaryKindCategories, "status": "success"})
	return summaries, nil
}

func (s *FinancialSummaryService) recordFailure(ctx context.Context, communityID *uuid.UUID, kind, stage string, err error) {
	s.metrics.IncrementCounter("summary_request", map[string]string{"kind": kind, "status": "failed_" + stage})
	s.activity.LogSummaryFailed(ctx, communityID, stage, err.Error())
}

// SummarizeTransactions folds rows into a FinancialSummary in one pass.
// Amounts are summed as exact decimals. Rows whose type is neither income nor
// expense are counted but do not move either total. A non-numeric amount
// fails the whole computation with a *MalformedAmountError.
func SummarizeTransactions(rows []models.TransactionAmount) (*models.FinancialSummary, error) {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, row := range rows {
		amount, err := parseStoredAmount(row)
		if err != nil {
			return nil, err
		}

		switch row.Type {
		case models.TransactionTypeIncome:
			income = income.Add(amount)
		case models.TransactionTypeExpense:
			expenses = expenses.Add(amount)
		}
	}

	return &models.FinancialSummary{
		TotalIncome:      income.InexactFloat64(),
		TotalExpenses:    expenses.InexactFloat64(),
		NetAmount:        income.Sub(expenses).InexactFloat64(),
		TransactionCount: len(rows),
	}, nil
}

type categoryKey struct {
	category string
	txType   string
}

// SummarizeByCategory groups rows by category and type, ordered by category
func SummarizeByCategory(rows []models.TransactionAmount) ([]models.CategorySummary, error) {
	totals := make(map[categoryKey]decimal.Decimal)
	counts := make(map[categoryKey]int)

	for _, row := range rows {
		amount, err := parseStoredAmount(row)
		if err != nil {
			return nil, err
		}

		category := row.Category
		if category == "" {
			category = "uncategorized"
		}
		key := categoryKey{category: category, txType: row.Type}
		totals[key] = totals[key].Add(amount)
		counts[key]++
	}

	summaries := make([]models.CategorySummary, 0, len(totals))
	for key, total := range totals {
		summaries = append(summaries, models.CategorySummary{
			Category:         key.category,
			Type:             key.txType,
			TransactionCount: counts[key],
			TotalAmount:      total.InexactFloat64(),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Category != summaries[j].Category {
			return summaries[i].Category < summaries[j].Category
		}
		return summaries[i].Type < summaries[j].Type
	})

	return summaries, nil
}

func parseStoredAmount(row models.TransactionAmount) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return decimal.Zero, &MalformedAmountError{TransactionID: row.ID, Amount: row.Amount}
	}
	return amount, nil
}
