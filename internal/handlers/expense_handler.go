package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// RecordExpense records an expense and posts its ledger entry
// @Summary Record expense
// @Tags Expenses
// @Security BearerAuth
// @Param request body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} SuccessResponse{data=models.Expense}
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) RecordExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	expense, err := h.expenseService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, expense)
}

func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	expense, err := h.expenseService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, expense)
}

func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdateExpenseRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	expense, err := h.expenseService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, expense)
}

func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.expenseService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Expense deleted")
}

// ListExpenses lists expenses
// @Summary List expenses
// @Tags Expenses
// @Security BearerAuth
// @Param communityId query string false "Community ID"
// @Param category query string false "Expense category"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {object} SuccessResponse{data=[]models.Expense,meta=dto.ListMeta}
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	filters := models.ExpenseFilters{
		ListOptions: listOptions(c),
		Category:    c.QueryParam("category"),
	}

	var err error
	if filters.CommunityID, err = optionalUUIDQuery(c, "communityId"); err != nil {
		return sendBadRequest(c, err)
	}
	if filters.From, err = optionalTimeQuery(c, "from"); err != nil {
		return sendBadRequest(c, err)
	}
	if filters.To, err = optionalUpperBoundQuery(c, "to"); err != nil {
		return sendBadRequest(c, err)
	}

	expenses, total, err := h.expenseService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, expenses, total, filters.Limit, filters.Offset)
}
