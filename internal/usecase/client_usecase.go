package usecase

import (
	"context"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateClientInput defines the data required to register a new client.
type CreateClientInput struct {
	Name     string
	Email    string
	Phone    string
	Document string
}

// UpdateClientInput carries the mutable fields of a client. An ID present in
// the payload that disagrees with the route is rejected as immutable.
type UpdateClientInput struct {
	ID       *uuid.UUID // Optional payload id, must match the route when set.
	Name     string
	Email    string
	Phone    string
	Document string
}

// ClientUsecase defines client record operations. Every method takes the
// caller's session and re-checks authorization against the concrete record.
type ClientUsecase interface {
	GetClient(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Client, error)
	ListClients(ctx context.Context, sess *entity.Session) ([]*entity.Client, error)
	CreateClient(ctx context.Context, sess *entity.Session, input CreateClientInput) (*entity.Client, error)
	UpdateClient(ctx context.Context, sess *entity.Session, id uuid.UUID, input UpdateClientInput) (*entity.Client, error)

	// DeleteClient runs the full cascade in one transaction: owned cases,
	// case logs, contracts, documents and transactions are deleted, event
	// and task references cleared, portal logins removed, then the client
	// row itself. Files on disk are removed only after the commit. Any
	// failure rolls back everything.
	DeleteClient(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.CascadeSummary, error)
}
