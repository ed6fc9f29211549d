package handler

import (
	"log/slog"
	"net/http"

	"praxis/internal/delivery/http/response"
	"praxis/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClientHandler holds dependencies for client record handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns a single client record.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	client, err := h.uc.GetClient(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "")
}

// List returns the client records visible to the caller.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.uc.ListClients(c.Request().Context(), session(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients, "")
}

// Create registers a new client.
func (h *ClientHandler) Create(c echo.Context) error {
	var input usecase.CreateClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.uc.CreateClient(c.Request().Context(), session(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, client, "Client created successfully")
}

// Update modifies a client's mutable fields.
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.uc.UpdateClient(c.Request().Context(), session(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "Client updated successfully")
}

// Delete runs the cascade deletion and reports what was removed. The
// summary is only produced after the transaction committed; any failure
// rolls everything back.
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.uc.DeleteClient(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Client deleted successfully")
}
