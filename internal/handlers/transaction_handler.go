package handlers

import (
	"temple-admin/internal/dto"
	"temple-admin/internal/errors"
	"temple-admin/internal/models"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles ledger endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a manual ledger entry
// @Summary Record manual transaction
// @Tags Transactions
// @Security BearerAuth
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} SuccessResponse{data=models.Transaction}
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_003 - Invalid amount"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	txn, err := h.transactionService.Create(c.Request().Context(), actorFromContext(c), &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendCreated(c, txn)
}

// GetTransaction retrieves a specific transaction by ID
// @Summary Get transaction
// @Tags Transactions
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=models.Transaction}
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	txn, err := h.transactionService.Get(c.Request().Context(), id)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, txn)
}

// UpdateTransaction edits a manual entry. Entries derived from donations and
// expenses are read only.
// @Failure 409 {object} errors.ErrorResponse "TRANSACTION_002"
// @Router /api/v1/transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	var req dto.UpdateTransactionRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	txn, err := h.transactionService.Update(c.Request().Context(), actorFromContext(c), id, &req)
	if err != nil {
		return sendServiceError(c, err)
	}

	return SendData(c, txn)
}

// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return sendBadRequest(c, err)
	}

	if err := h.transactionService.Delete(c.Request().Context(), actorFromContext(c), id); err != nil {
		return sendServiceError(c, err)
	}

	return SendDeleted(c, "Transaction deleted")
}

// ListTransactions lists ledger rows, newest first
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Param communityId query string false "Community ID"
// @Param type query string false "income or expense"
// @Param category query string false "Category code"
// @Param source query string false "manual, donation or expense"
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {object} SuccessResponse{data=[]models.Transaction,meta=dto.ListMeta}
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseTransactionFilters(c)
	if err != nil {
		return sendBadRequest(c, err)
	}

	transactions, total, err := h.transactionService.List(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, errors.SystemDatabaseError, err)
	}

	return SendList(c, transactions, total, filters.Limit, filters.Offset)
}

func parseTransactionFilters(c echo.Context) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		ListOptions: listOptions(c),
		Type:        c.QueryParam("type"),
		Category:    c.QueryParam("category"),
		Source:      c.QueryParam("source"),
	}

	if filters.Type != "" && !models.IsValidTransactionType(filters.Type) {
		return filters, &errBadQuery{param: "type", code: errors.ValidationInvalidFormat}
	}

	var err error
	if filters.CommunityID, err = optionalUUIDQuery(c, "communityId"); err != nil {
		return filters, err
	}
	if filters.From, err = optionalTimeQuery(c, "from"); err != nil {
		return filters, err
	}
	if filters.To, err = optionalUpperBoundQuery(c, "to"); err != nil {
		return filters, err
	}
	return filters, nil
}
