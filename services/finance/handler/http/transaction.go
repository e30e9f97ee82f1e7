package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fintrackr/fintrackr/internal/pkg/logger"
	"github.com/fintrackr/fintrackr/internal/pkg/middleware"
	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/internal/utils"
	"github.com/fintrackr/fintrackr/services/finance"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	txUC finance.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(txUC finance.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		txUC: txUC,
	}
}

// List handles listing the caller's transactions, newest first
func (h *TransactionHandler) List(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	txs, err := h.txUC.ListTransactions(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txs)
}

// Get handles retrieving a single transaction by id
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	tx, err := h.txUC.GetTransaction(c.Request().Context(), userID, id)
	if err != nil {
		return h.mapTransactionError(c, err, id)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", tx)
}

// Create handles transaction creation requests
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.txUC.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidTransactionType) {
			return utils.BadRequestResponse(c, "Type must be Income or Expense")
		}
		logger.Error("Failed to create transaction",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to create transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", tx)
}

// Update handles full replacement of a transaction's mutable fields
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	var req models.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.txUC.UpdateTransaction(c.Request().Context(), userID, id, &req); err != nil {
		if errors.Is(err, finance.ErrInvalidTransactionType) {
			return utils.BadRequestResponse(c, "Type must be Income or Expense")
		}
		return h.mapTransactionError(c, err, id)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete handles transaction deletion requests
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	if err := h.txUC.DeleteTransaction(c.Request().Context(), userID, id); err != nil {
		return h.mapTransactionError(c, err, id)
	}

	return c.NoContent(http.StatusNoContent)
}

// Filter handles filtered transaction listing
func (h *TransactionHandler) Filter(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := &models.TransactionFilter{
		Category: c.QueryParam("category"),
		Type:     c.QueryParam("type"),
		Sort:     c.QueryParam("sort"),
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid startDate")
		}
		filter.StartDate = &t
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid endDate")
		}
		filter.EndDate = &t
	}

	txs, err := h.txUC.FilterTransactions(c.Request().Context(), userID, filter)
	if err != nil {
		logger.Error("Failed to filter transactions",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to filter transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txs)
}

// mapTransactionError translates usecase errors onto response codes.
// Not found is reported before forbidden; the usecase checks in that
// order.
func (h *TransactionHandler) mapTransactionError(c echo.Context, err error, id uuid.UUID) error {
	switch {
	case errors.Is(err, finance.ErrTransactionNotFound):
		return utils.NotFoundResponse(c, "Transaction not found")
	case errors.Is(err, finance.ErrForbidden):
		return utils.ForbiddenResponse(c, "")
	default:
		logger.Error("Transaction operation failed",
			logger.ErrorField(err),
			logger.String("transaction_id", id.String()))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Transaction operation failed")
	}
}

// parseDate accepts a plain date or a full RFC 3339 timestamp
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
