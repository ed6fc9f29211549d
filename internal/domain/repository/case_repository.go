package repository

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCaseNotFound is returned when a case lookup misses.
var ErrCaseNotFound = errors.New("case not found")

// CaseRepository persists legal cases and their log sub-records.
type CaseRepository interface {
	// FindByID retrieves a case with its logs preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error)

	// ListByClient retrieves all cases owned by a client.
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Case, error)

	// Create persists a new case.
	Create(ctx context.Context, c *entity.Case) error

	// Update modifies the mutable fields of an existing case.
	Update(ctx context.Context, c *entity.Case) error

	// Delete removes the case and its own logs, never ascending to the client.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddLog appends a log entry to a case.
	AddLog(ctx context.Context, log *entity.CaseLog) error

	// DeleteLogsByClient removes the log rows of every case owned by the
	// client. Part of the cascade: children go before their parents.
	DeleteLogsByClient(ctx context.Context, clientID uuid.UUID) (int64, error)

	// DeleteByClient removes every case owned by the client, returning the
	// number of rows removed.
	DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
