package handlers

import (
	stderrors "errors"

	"temple-admin/internal/errors"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the financial summary endpoints
type SummaryHandler struct {
	summaryService services.FinancialSummaryServiceInterface
}

// NewSummaryHandler creates a new financial summary handler
func NewSummaryHandler(summaryService services.FinancialSummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetSummary returns income, expense and net totals over the ledger
// @Summary Financial summary
// @Description Sum every live transaction into totalIncome, totalExpenses, netAmount and transactionCount
// @Tags Summary
// @Produce json
// @Param communityId query string false "Scope the summary to one community"
// @Success 200 {object} SuccessResponse{data=models.FinancialSummary}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid community ID"
// @Failure 500 {object} errors.ErrorResponse "SUMMARY_001 or SUMMARY_002"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	communityID, err := optionalUUIDQuery(c, "communityId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	summary, err := h.summaryService.GetSummary(c.Request().Context(), communityID)
	if err != nil {
		return sendSummaryError(c, err)
	}

	return SendData(c, summary)
}

// GetCategorySummaries returns per category totals
// @Summary Category summary
// @Tags Summary
// @Produce json
// @Param communityId query string false "Scope the summary to one community"
// @Success 200 {object} SuccessResponse{data=[]models.CategorySummary}
// @Failure 500 {object} errors.ErrorResponse "SUMMARY_001 or SUMMARY_002"
// @Router /api/v1/summary/categories [get]
func (h *SummaryHandler) GetCategorySummaries(c echo.Context) error {
	communityID, err := optionalUUIDQuery(c, "communityId")
	if err != nil {
		return sendBadRequest(c, err)
	}

	summaries, err := h.summaryService.GetCategorySummaries(c.Request().Context(), communityID)
	if err != nil {
		return sendSummaryError(c, err)
	}

	return SendData(c, summaries)
}

func sendSummaryError(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrMalformedAmount) {
		return SendSystemError(c, errors.SummaryComputationFailed, err)
	}
	return SendSystemError(c, errors.SummaryRetrievalFailed, err)
}
