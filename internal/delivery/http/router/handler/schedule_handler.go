package handler

import (
	"log/slog"
	"net/http"

	"praxis/internal/delivery/http/response"
	"praxis/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ScheduleHandler holds dependencies for calendar event and task handlers.
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler, injected by Fx.
func NewScheduleHandler(uc usecase.ScheduleUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetEvent returns a single calendar event.
func (h *ScheduleHandler) GetEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.uc.GetEvent(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// ListEventsByClient returns the events referencing a client.
func (h *ScheduleHandler) ListEventsByClient(c echo.Context) error {
	clientID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	events, err := h.uc.ListEventsByClient(c.Request().Context(), session(c), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// CreateEvent adds a calendar event, optionally referencing a client.
func (h *ScheduleHandler) CreateEvent(c echo.Context) error {
	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), session(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created successfully")
}

// UpdateEvent modifies a calendar event.
func (h *ScheduleHandler) UpdateEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.EventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), session(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Event updated successfully")
}

// DeleteEvent removes a calendar event.
func (h *ScheduleHandler) DeleteEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), session(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Event deleted successfully")
}

// GetTask returns a single task.
func (h *ScheduleHandler) GetTask(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.uc.GetTask(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "")
}

// ListTasksByClient returns the tasks referencing a client.
func (h *ScheduleHandler) ListTasksByClient(c echo.Context) error {
	clientID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	tasks, err := h.uc.ListTasksByClient(c.Request().Context(), session(c), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tasks, "")
}

// CreateTask adds a task, optionally referencing a client.
func (h *ScheduleHandler) CreateTask(c echo.Context) error {
	var input usecase.TaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}

	task, err := h.uc.CreateTask(c.Request().Context(), session(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, task, "Task created successfully")
}

// UpdateTask modifies a task.
func (h *ScheduleHandler) UpdateTask(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.TaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}

	task, err := h.uc.UpdateTask(c.Request().Context(), session(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task updated successfully")
}

// DeleteTask removes a task.
func (h *ScheduleHandler) DeleteTask(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTask(c.Request().Context(), session(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted successfully")
}
