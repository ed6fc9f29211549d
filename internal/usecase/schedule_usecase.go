package usecase

import (
	"context"
	"time"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// EventInput defines the data for creating or updating a calendar event.
type EventInput struct {
	ClientID *uuid.UUID
	Title    string
	Location string
	StartsAt time.Time
	EndsAt   time.Time
}

// TaskInput defines the data for creating or updating a task.
type TaskInput struct {
	ClientID    *uuid.UUID
	Title       string
	Description string
	DueAt       *time.Time
	Done        bool
}

// ScheduleUsecase defines calendar and task operations. Client references on
// these records are informational; they never gate or cascade deletion.
type ScheduleUsecase interface {
	GetEvent(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Event, error)
	ListEventsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, sess *entity.Session, input EventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, sess *entity.Session, id uuid.UUID, input EventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	GetTask(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Task, error)
	ListTasksByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Task, error)
	CreateTask(ctx context.Context, sess *entity.Session, input TaskInput) (*entity.Task, error)
	UpdateTask(ctx context.Context, sess *entity.Session, id uuid.UUID, input TaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}
