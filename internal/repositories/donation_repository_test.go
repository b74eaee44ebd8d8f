package repositories

import (
	"context"
	"testing"
	"time"

	"temple-admin/internal/database"
	"temple-admin/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestLedgerRepositories(t *testing.T) {
	suite.Run(t, new(LedgerRepositorySuite))
}

type LedgerRepositorySuite struct {
	suite.Suite
	db           *database.DB
	ctx          context.Context
	community    *models.Community
	donations    DonationRepositoryInterface
	expenses     ExpenseRepositoryInterface
	transactions TransactionRepositoryInterface
}

func (s *LedgerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.community = database.CreateTestCommunity(s.T(), s.db, "Meenakshi Temple")
	s.donations = NewDonationRepository(s.db.DB)
	s.expenses = NewExpenseRepository(s.db.DB)
	s.transactions = NewTransactionRepository(s.db.DB)
}

func (s *LedgerRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *LedgerRepositorySuite) newDonation(amount string, donatedAt time.Time) *models.Donation {
	return &models.Donation{
		CommunityID:   s.community.ID,
		DonorName:     "Kavya Reddy",
		Amount:        decimal.RequireFromString(amount),
		Purpose:       models.DonationPurposeAnnadanam,
		PaymentMethod: models.PaymentMethodUPI,
		DonatedAt:     donatedAt,
	}
}

func (s *LedgerRepositorySuite) TestDonation_CreateWithLedger() {
	donation := s.newDonation("1001.50", time.Now().UTC())

	s.Require().NoError(s.donations.CreateWithLedger(s.ctx, donation))
	s.Require().NotNil(donation.TransactionID)
	s.Regexp(`^DON-\d{8}-[0-9A-F-]{6}$`, donation.ReceiptNumber)

	entry, err := s.transactions.GetByID(s.ctx, *donation.TransactionID)
	s.Require().NoError(err)
	s.Equal(models.TransactionTypeIncome, entry.Type)
	s.Equal("1001.50", entry.Amount)
	s.Equal("donation:annadanam", entry.Category)
	s.Equal(models.TransactionSourceDonation, entry.Source)
	s.Equal(donation.ReceiptNumber, entry.Reference)
	s.Require().NotNil(entry.SourceID)
	s.Equal(donation.ID, *entry.SourceID)

	stored, err := s.donations.GetByID(s.ctx, donation.ID)
	s.Require().NoError(err)
	s.Equal(entry.ID, *stored.TransactionID)
}

func (s *LedgerRepositorySuite) TestDonation_CreateWithLedgerRollsBack() {
	donation := s.newDonation("10.00", time.Now().UTC())
	donation.PaymentMethod = "barter"

	s.Error(s.donations.CreateWithLedger(s.ctx, donation))

	_, total, err := s.transactions.List(s.ctx, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *LedgerRepositorySuite) TestDonation_UpdateWithLedger() {
	donation := s.newDonation("75.00", time.Now().UTC())
	s.Require().NoError(s.donations.CreateWithLedger(s.ctx, donation))
	original := *donation.TransactionID

	donation.Purpose = models.DonationPurposeFestival
	donation.DonorName = "Kavya R."
	s.Require().NoError(s.donations.UpdateWithLedger(s.ctx, donation))

	entry, err := s.transactions.GetByID(s.ctx, original)
	s.Require().NoError(err)
	s.Equal("donation:festival", entry.Category)
	s.Contains(entry.Description, "Kavya R.")
	s.Equal("75.00", entry.Amount)
	s.Equal(original, *donation.TransactionID)
}

func (s *LedgerRepositorySuite) TestDonation_DeleteWithLedger() {
	donation := s.newDonation("250.00", time.Now().UTC())
	s.Require().NoError(s.donations.CreateWithLedger(s.ctx, donation))

	s.Require().NoError(s.donations.DeleteWithLedger(s.ctx, donation.ID))

	_, err := s.donations.GetByID(s.ctx, donation.ID)
	s.ErrorIs(err, ErrDonationNotFound)
	_, err = s.transactions.GetByID(s.ctx, *donation.TransactionID)
	s.ErrorIs(err, ErrTransactionNotFound)

	s.ErrorIs(s.donations.DeleteWithLedger(s.ctx, donation.ID), ErrDonationNotFound)
}

func (s *LedgerRepositorySuite) TestDonation_ListAndListAll() {
	base := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.Require().NoError(s.donations.CreateWithLedger(s.ctx, s.newDonation("100", base.AddDate(0, 0, i))))
	}

	from := base.AddDate(0, 0, 1)
	items, total, err := s.donations.List(s.ctx, models.DonationFilters{CommunityID: &s.community.ID, From: &from})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.True(items[0].DonatedAt.After(items[1].DonatedAt))

	all, err := s.donations.ListAll(s.ctx, models.DonationFilters{Purpose: models.DonationPurposeAnnadanam})
	s.Require().NoError(err)
	s.Len(all, 3)
	s.True(all[0].DonatedAt.Before(all[2].DonatedAt))
}

func (s *LedgerRepositorySuite) TestExpense_UpdateWithLedger() {
	expense := &models.Expense{
		CommunityID: s.community.ID,
		Category:    models.ExpenseCategoryUtilities,
		Description: "Electricity bill",
		Amount:      decimal.RequireFromString("320.40"),
	}
	s.Require().NoError(s.expenses.CreateWithLedger(s.ctx, expense))
	s.Require().NotNil(expense.TransactionID)
	original := *expense.TransactionID

	expense.Amount = decimal.RequireFromString("350.00")
	expense.Category = models.ExpenseCategoryMaintenance
	s.Require().NoError(s.expenses.UpdateWithLedger(s.ctx, expense))

	entry, err := s.transactions.GetByID(s.ctx, original)
	s.Require().NoError(err)
	s.Equal("350.00", entry.Amount)
	s.Equal("expense:maintenance", entry.Category)
	s.Equal(models.TransactionTypeExpense, entry.Type)
}

func (s *LedgerRepositorySuite) TestExpense_UpdateWithLedgerRecreatesMissingRow() {
	expense := &models.Expense{
		CommunityID: s.community.ID,
		Description: "Flowers",
		Amount:      decimal.RequireFromString("45.00"),
	}
	s.Require().NoError(s.expenses.CreateWithLedger(s.ctx, expense))
	s.Require().NoError(s.transactions.Delete(s.ctx, *expense.TransactionID))

	s.Require().NoError(s.expenses.UpdateWithLedger(s.ctx, expense))

	entry, err := s.transactions.GetByID(s.ctx, *expense.TransactionID)
	s.Require().NoError(err)
	s.Equal("45.00", entry.Amount)
}

func (s *LedgerRepositorySuite) TestExpense_DeleteWithLedger() {
	expense := &models.Expense{
		CommunityID: s.community.ID,
		Description: "Priest honorarium",
		Category:    models.ExpenseCategorySalaries,
		Amount:      decimal.RequireFromString("500"),
	}
	s.Require().NoError(s.expenses.CreateWithLedger(s.ctx, expense))
	s.Require().NoError(s.expenses.DeleteWithLedger(s.ctx, expense.ID))

	_, total, err := s.transactions.List(s.ctx, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Zero(total)

	s.ErrorIs(s.expenses.DeleteWithLedger(s.ctx, uuid.New()), ErrExpenseNotFound)
}

func (s *LedgerRepositorySuite) TestExpense_ListByCategory() {
	for _, category := range []string{models.ExpenseCategoryEvents, models.ExpenseCategoryEvents, models.ExpenseCategoryOther} {
		s.Require().NoError(s.expenses.CreateWithLedger(s.ctx, &models.Expense{
			CommunityID: s.community.ID,
			Category:    category,
			Description: "Festival",
			Amount:      decimal.NewFromInt(10),
		}))
	}

	_, total, err := s.expenses.List(s.ctx, models.ExpenseFilters{Category: models.ExpenseCategoryEvents})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
}
