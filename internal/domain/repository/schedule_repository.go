package repository

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event lookup misses.
var ErrEventNotFound = errors.New("event not found")

// ErrTaskNotFound is returned when a task lookup misses.
var ErrTaskNotFound = errors.New("task not found")

// ScheduleRepository persists events and tasks. Their client references are
// back-references, not ownership: a client cascade clears them instead of
// deleting the rows.
type ScheduleRepository interface {
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListEventsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, event *entity.Event) error
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	ListTasksByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Task, error)
	CreateTask(ctx context.Context, task *entity.Task) error
	UpdateTask(ctx context.Context, task *entity.Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error

	// UnlinkEventsByClient clears the client reference on every event that
	// points at the client, returning how many were unlinked. The rows survive.
	UnlinkEventsByClient(ctx context.Context, clientID uuid.UUID) (int64, error)

	// UnlinkTasksByClient clears the client reference on every task that
	// points at the client, returning how many were unlinked. The rows survive.
	UnlinkTasksByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
