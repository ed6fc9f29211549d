package repository

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClientNotFound is returned when a client lookup misses.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository persists the office's customer records.
// Deleting a client row is only ever done inside the cascade orchestrator's
// transaction, after its owned rows are gone.
type ClientRepository interface {
	// FindByID retrieves a single client by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// List retrieves all clients ordered by name.
	List(ctx context.Context) ([]*entity.Client, error)

	// Create persists a new client.
	Create(ctx context.Context, client *entity.Client) error

	// Update modifies the mutable fields of an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes exactly the client row. Owned rows must already be gone;
	// the database enforces this with foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error
}
