package handler

import (
	"log/slog"
	"net/http"

	"praxis/internal/delivery/http/response"
	"praxis/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContractHandler holds dependencies for fee agreement handlers.
type ContractHandler struct {
	uc     usecase.ContractUsecase
	logger *slog.Logger
}

// NewContractHandler is the constructor for ContractHandler, injected by Fx.
func NewContractHandler(uc usecase.ContractUsecase, logger *slog.Logger) *ContractHandler {
	return &ContractHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns a single contract.
func (h *ContractHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	contract, err := h.uc.GetContract(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contract, "")
}

// ListByClient returns the contracts owned by a client.
func (h *ContractHandler) ListByClient(c echo.Context) error {
	clientID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	contracts, err := h.uc.ListContractsByClient(c.Request().Context(), session(c), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contracts, "")
}

// Create registers a fee agreement for a client.
func (h *ContractHandler) Create(c echo.Context) error {
	var input usecase.CreateContractInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract input")
	}

	contract, err := h.uc.CreateContract(c.Request().Context(), session(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, contract, "Contract created successfully")
}

// Update modifies a contract's mutable fields.
func (h *ContractHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateContractInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract input")
	}

	contract, err := h.uc.UpdateContract(c.Request().Context(), session(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, contract, "Contract updated successfully")
}

// Delete removes a contract.
func (h *ContractHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteContract(c.Request().Context(), session(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contract deleted successfully")
}
