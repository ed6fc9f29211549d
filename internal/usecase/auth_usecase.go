// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"praxis/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required to log in.
type LoginInput struct {
	Identifier string
	Password   string
}

// --- Output DTOs ---

// LoginOutput returns the issued session token after a successful login.
// The token is the only credential; nothing about the principal can be
// derived from it.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Kind      entity.PrincipalKind
	Role      entity.Role
}

// AuthUsecase defines the authentication operations exposed to the delivery layer.
type AuthUsecase interface {
	// Login verifies the credential and issues a session. Unknown
	// identifiers and wrong passwords fail identically.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout destroys the session. Idempotent.
	Logout(ctx context.Context, token string) error
}
