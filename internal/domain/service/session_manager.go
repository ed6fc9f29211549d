package service

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"
)

// ErrSessionNotFound is returned for unknown AND expired tokens alike; the
// two cases must be indistinguishable downstream.
var ErrSessionNotFound = errors.New("session not found")

// SessionManager issues and validates opaque session tokens bound to a
// principal. Internal storage (in-memory table, Redis) is an implementation
// detail behind this contract.
type SessionManager interface {
	// Create issues a new token for the principal with a fixed-window expiry.
	Create(ctx context.Context, principal *entity.Principal) (*entity.Session, error)

	// Validate resolves a token to its live session. Expired or unknown
	// tokens return ErrSessionNotFound. A validate racing a destroy never
	// yields a session after the destroy completed.
	Validate(ctx context.Context, token string) (*entity.Session, error)

	// Destroy removes the session immediately. Idempotent: destroying an
	// absent token is not an error.
	Destroy(ctx context.Context, token string) error
}
