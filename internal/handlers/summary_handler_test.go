package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"temple-admin/internal/models"
	"temple-admin/internal/services"
	"temple-admin/internal/services/service_mocks"
)

type SummaryHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	echo           *echo.Echo
	summaryService *service_mocks.MockFinancialSummaryServiceInterface
	handler        *SummaryHandler
}

func TestSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerSuite))
}

func (s *SummaryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = newTestEcho()
	s.summaryService = service_mocks.NewMockFinancialSummaryServiceInterface(s.ctrl)
	s.handler = NewSummaryHandler(s.summaryService)
}

func (s *SummaryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// ============================================================================
// GetSummary
// ============================================================================

func (s *SummaryHandlerSuite) TestGetSummary_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	authenticate(c, models.RoleStaff)

	s.summaryService.EXPECT().
		GetSummary(gomock.Any(), gomock.Nil()).
		Return(&models.FinancialSummary{
			TotalIncome:      1500.5,
			TotalExpenses:    400.25,
			NetAmount:        1100.25,
			TransactionCount: 3,
		}, nil)

	err := s.handler.GetSummary(c)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.True(body.Success)
	s.Equal(1500.5, body.Data["totalIncome"])
	s.Equal(400.25, body.Data["totalExpenses"])
	s.Equal(1100.25, body.Data["netAmount"])
	s.Equal(float64(3), body.Data["transactionCount"])
}

func (s *SummaryHandlerSuite) TestGetSummary_ScopedToCommunity() {
	communityID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?communityId="+communityID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.summaryService.EXPECT().
		GetSummary(gomock.Any(), &communityID).
		Return(&models.FinancialSummary{}, nil)

	s.Require().NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SummaryHandlerSuite) TestGetSummary_InvalidCommunityID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?communityId=nope", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", decodeError(rec).Code)
}

func (s *SummaryHandlerSuite) TestGetSummary_RetrievalFailure() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	authenticate(c, models.RoleAdmin)

	s.summaryService.EXPECT().
		GetSummary(gomock.Any(), gomock.Nil()).
		Return(nil, fmt.Errorf("%w: connection refused", services.ErrSummaryRetrieval))

	s.Require().NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	body := decodeError(rec)
	s.False(body.Success)
	s.Equal("SUMMARY_001", body.Code)
	s.Equal("trace-123", body.TraceID)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *SummaryHandlerSuite) TestGetSummary_MalformedAmount() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(ExposeErrorsContextKey, true)

	s.summaryService.EXPECT().
		GetSummary(gomock.Any(), gomock.Nil()).
		Return(nil, &services.MalformedAmountError{TransactionID: uuid.New(), Amount: "abc"})

	s.Require().NoError(s.handler.GetSummary(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	body := decodeError(rec)
	s.Equal("SUMMARY_002", body.Code)
	s.Contains(body.Error, "abc")
}

// ============================================================================
// GetCategorySummaries
// ============================================================================

func (s *SummaryHandlerSuite) TestGetCategorySummaries_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary/categories", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.summaryService.EXPECT().
		GetCategorySummaries(gomock.Any(), gomock.Nil()).
		Return([]models.CategorySummary{
			{Category: "donation:general", Type: models.TransactionTypeIncome, TotalAmount: 100, TransactionCount: 2},
		}, nil)

	s.Require().NoError(s.handler.GetCategorySummaries(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "donation:general")
}

func (s *SummaryHandlerSuite) TestGetCategorySummaries_Failure() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary/categories", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.summaryService.EXPECT().
		GetCategorySummaries(gomock.Any(), gomock.Nil()).
		Return(nil, services.ErrSummaryRetrieval)

	s.Require().NoError(s.handler.GetCategorySummaries(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SUMMARY_001", decodeError(rec).Code)
}
