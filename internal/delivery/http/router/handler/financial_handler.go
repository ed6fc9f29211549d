package handler

import (
	"log/slog"
	"net/http"

	"praxis/internal/delivery/http/response"
	"praxis/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FinancialHandler holds dependencies for financial record handlers.
type FinancialHandler struct {
	uc     usecase.FinancialUsecase
	logger *slog.Logger
}

// NewFinancialHandler is the constructor for FinancialHandler, injected by Fx.
func NewFinancialHandler(uc usecase.FinancialUsecase, logger *slog.Logger) *FinancialHandler {
	return &FinancialHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns a single transaction.
func (h *FinancialHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	tx, err := h.uc.GetTransaction(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "")
}

// ListByClient returns a client's ledger.
func (h *FinancialHandler) ListByClient(c echo.Context) error {
	clientID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	txs, err := h.uc.ListTransactionsByClient(c.Request().Context(), session(c), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, txs, "")
}

// Create records a financial movement.
func (h *FinancialHandler) Create(c echo.Context) error {
	var input usecase.CreateTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}

	tx, err := h.uc.CreateTransaction(c.Request().Context(), session(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tx, "Transaction created successfully")
}

// Update modifies a transaction's mutable fields.
func (h *FinancialHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}

	tx, err := h.uc.UpdateTransaction(c.Request().Context(), session(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "Transaction updated successfully")
}

// Delete removes a transaction. Admin only.
func (h *FinancialHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTransaction(c.Request().Context(), session(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Transaction deleted successfully")
}
