package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"temple-admin/internal/database"
	"temple-admin/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	ctx  context.Context
	repo TransactionRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.ctx = context.Background()
	s.repo = NewTransactionRepository(s.db.DB)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateNormalizesAmount() {
	txn := &models.Transaction{Type: models.TransactionTypeIncome, Amount: "12.5", Category: "hundi"}

	s.Require().NoError(s.repo.Create(s.ctx, txn))
	s.Equal("12.50", txn.Amount)
	s.Equal(models.TransactionSourceManual, txn.Source)
	s.Regexp(`^TXN-\d{8}-`, txn.Reference)

	err := s.repo.Create(s.ctx, &models.Transaction{Type: models.TransactionTypeIncome, Amount: "abc"})
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListAmountsSkipsDeleted() {
	community := database.CreateTestCommunity(s.T(), s.db, "Rama Temple")

	rows := []*models.Transaction{
		{CommunityID: &community.ID, Type: models.TransactionTypeIncome, Amount: "100.00"},
		{CommunityID: &community.ID, Type: models.TransactionTypeExpense, Amount: "40.25"},
		{Type: models.TransactionTypeIncome, Amount: "7"},
	}
	for _, r := range rows {
		s.Require().NoError(s.repo.Create(s.ctx, r))
	}
	s.Require().NoError(s.repo.Delete(s.ctx, rows[1].ID))

	amounts, err := s.repo.ListAmounts(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(amounts, 2)

	scoped, err := s.repo.ListAmounts(s.ctx, &community.ID)
	s.Require().NoError(err)
	s.Require().Len(scoped, 1)
	s.Equal("100.00", scoped[0].Amount)
	s.Equal(models.TransactionTypeIncome, scoped[0].Type)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListAmountsReturnsStoredText() {
	now := time.Now().UTC()
	s.Require().NoError(s.db.Exec(
		"INSERT INTO transactions (id, type, amount, source, reference, occurred_at, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		uuid.New().String(), models.TransactionTypeIncome, "not-a-number", models.TransactionSourceManual, "EXT-1", now, now, now,
	).Error)

	amounts, err := s.repo.ListAmounts(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(amounts, 1)
	s.Equal("not-a-number", amounts[0].Amount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_ListFilters() {
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.Create(s.ctx, &models.Transaction{Type: models.TransactionTypeIncome, Amount: "1", Category: "hundi", OccurredAt: base}))
	s.Require().NoError(s.repo.Create(s.ctx, &models.Transaction{Type: models.TransactionTypeExpense, Amount: "2", Category: "repairs", OccurredAt: base.AddDate(0, 1, 0)}))

	items, total, err := s.repo.List(s.ctx, models.TransactionFilters{Type: models.TransactionTypeExpense})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("repairs", items[0].Category)

	to := base.AddDate(0, 0, 1)
	_, total, err = s.repo.List(s.ctx, models.TransactionFilters{To: &to})
	s.Require().NoError(err)
	s.Equal(int64(1), total)

	items, _, err = s.repo.List(s.ctx, models.TransactionFilters{})
	s.Require().NoError(err)
	s.Equal("repairs", items[0].Category)
}

func TestTransactionRepository_ListAmountsQueryError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, type, amount, category FROM "transactions"`).
		WillReturnError(errors.New("connection reset"))

	repo := NewTransactionRepository(gdb)
	_, err = repo.ListAmounts(context.Background(), nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list transaction amounts")
	assert.NoError(t, mock.ExpectationsWereMet())
}
