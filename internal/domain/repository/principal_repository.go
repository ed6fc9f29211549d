// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPrincipalNotFound is returned when no principal matches the lookup.
var ErrPrincipalNotFound = errors.New("principal not found")

// PrincipalRepository persists login principals. Password hashes stay inside
// the credential store; callers above the store never read them.
type PrincipalRepository interface {
	// FindByIdentifier retrieves a principal by its login identifier.
	FindByIdentifier(ctx context.Context, identifier string) (*entity.Principal, error)

	// FindByID retrieves a principal by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Principal, error)

	// Create persists a new principal. The role is fixed from this point on.
	Create(ctx context.Context, principal *entity.Principal) error

	// DeleteByClient removes portal principals bound to the given client.
	// Used by the client cascade so orphaned portal logins cannot survive.
	DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
