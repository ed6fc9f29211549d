package service

import (
	"context"

	"praxis/internal/domain/entity"
)

// CredentialVerifier checks a login attempt against the stored credential.
// A mismatch and an unknown identifier produce the same failure, so callers
// cannot enumerate identifiers. Failed attempts mutate no state.
type CredentialVerifier interface {
	Verify(ctx context.Context, identifier, password string) (*entity.Principal, error)
}
