package handler

import (
	"log/slog"
	"net/http"

	"praxis/internal/delivery/http/response"
	"praxis/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CaseHandler holds dependencies for legal case handlers.
type CaseHandler struct {
	uc     usecase.CaseUsecase
	logger *slog.Logger
}

// NewCaseHandler is the constructor for CaseHandler, injected by Fx.
func NewCaseHandler(uc usecase.CaseUsecase, logger *slog.Logger) *CaseHandler {
	return &CaseHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns a single case with its history.
func (h *CaseHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	legalCase, err := h.uc.GetCase(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, legalCase, "")
}

// ListByClient returns the cases owned by a client.
func (h *CaseHandler) ListByClient(c echo.Context) error {
	clientID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cases, err := h.uc.ListCasesByClient(c.Request().Context(), session(c), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cases, "")
}

// Create opens a new case for a client.
func (h *CaseHandler) Create(c echo.Context) error {
	var input usecase.CreateCaseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid case input")
	}

	legalCase, err := h.uc.CreateCase(c.Request().Context(), session(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, legalCase, "Case created successfully")
}

// Update modifies a case's mutable fields. The owning client can never change.
func (h *CaseHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateCaseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid case input")
	}

	legalCase, err := h.uc.UpdateCase(c.Request().Context(), session(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, legalCase, "Case updated successfully")
}

// Delete removes a case and its logs, leaving the owning client untouched.
func (h *CaseHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCase(c.Request().Context(), session(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Case deleted successfully")
}

// AddLog appends a history entry to a case.
func (h *CaseHandler) AddLog(c echo.Context) error {
	caseID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.AddCaseLogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid case log input")
	}

	log, err := h.uc.AddCaseLog(c.Request().Context(), session(c), caseID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, log, "Case log added successfully")
}
