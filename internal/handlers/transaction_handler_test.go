package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"temple-admin/internal/models"
	"temple-admin/internal/services"
	"temple-admin/internal/services/service_mocks"
)

type TransactionHandlerSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	echo               *echo.Echo
	transactionService *service_mocks.MockTransactionServiceInterface
	handler            *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = newTestEcho()
	s.transactionService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.transactionService)
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionHandlerSuite) TestCreateTransaction() {
	req := jsonRequest(http.MethodPost, "/api/v1/transactions", map[string]string{
		"type":     models.TransactionTypeIncome,
		"amount":   "1200.00",
		"category": "hundi",
	})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	authenticate(c, models.RoleAdmin)

	s.transactionService.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Transaction{ID: uuid.New(), Type: models.TransactionTypeIncome, Amount: "1200.00", Source: models.TransactionSourceManual}, nil)

	s.Require().NoError(s.handler.CreateTransaction(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"amount":"1200.00"`)
}

func (s *TransactionHandlerSuite) TestUpdateTransaction_ReadOnly() {
	id := uuid.New()
	req := jsonRequest(http.MethodPatch, "/api/v1/transactions/"+id.String(), map[string]string{"amount": "5"})
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	authenticate(c, models.RoleAdmin)

	s.transactionService.EXPECT().
		Update(gomock.Any(), gomock.Any(), id, gomock.Any()).
		Return(nil, services.ErrTransactionReadOnly)

	s.Require().NoError(s.handler.UpdateTransaction(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("TRANSACTION_002", decodeError(rec).Code)
}

func (s *TransactionHandlerSuite) TestGetTransaction_NotFound() {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.transactionService.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrTransactionNotFound)

	s.Require().NoError(s.handler.GetTransaction(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("TRANSACTION_001", decodeError(rec).Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_InvalidType() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?type=refund", nil)
	rec := httptest.NewRecorder()

	s.Require().NoError(s.handler.ListTransactions(s.echo.NewContext(req, rec)))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", decodeError(rec).Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_Filters() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?type=expense&source=expense&category=expense:utilities", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.transactionService.EXPECT().
		List(gomock.Any(), models.TransactionFilters{
			ListOptions: models.ListOptions{Limit: models.DefaultListLimit},
			Type:        models.TransactionTypeExpense,
			Category:    "expense:utilities",
			Source:      models.TransactionSourceExpense,
		}).
		Return([]models.Transaction{}, int64(0), nil)

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_DateOnlyToCoversWholeDay() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?from=2024-01-01&to=2024-01-31", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.transactionService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Require().NotNil(filters.From)
			s.Require().NotNil(filters.To)
			s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filters.From)

			lateEvening := time.Date(2024, 1, 31, 21, 30, 0, 0, time.UTC)
			s.False(filters.To.Before(lateEvening))
			s.True(filters.To.Before(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
			return []models.Transaction{}, int64(0), nil
		})

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransactionHandlerSuite) TestListTransactions_TimestampToIsExact() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions?to=2024-01-31T12:00:00Z", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.transactionService.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Require().NotNil(filters.To)
			s.Equal(time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), *filters.To)
			return []models.Transaction{}, int64(0), nil
		})

	s.Require().NoError(s.handler.ListTransactions(c))
	s.Equal(http.StatusOK, rec.Code)
}
