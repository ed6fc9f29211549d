package auth

import (
	"context"
	"log/slog"

	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/repository"
	"praxis/internal/domain/service"

	"github.com/pkg/errors"
)

// dummyHash is a valid bcrypt hash of random material. When the identifier is
// unknown we still run one comparison against it, so the unknown-identifier
// path costs the same hash work as a wrong password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// credentialStore verifies login attempts against stored principal hashes.
// Failed attempts mutate nothing; rate limiting is a known hardening gap.
type credentialStore struct {
	principals repository.PrincipalRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// NewCredentialStore is the constructor for credentialStore.
func NewCredentialStore(
	principals repository.PrincipalRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) service.CredentialVerifier {
	return &credentialStore{
		principals: principals,
		hasher:     hasher,
		logger:     logger,
	}
}

// Verify resolves the identifier and checks the password. An unknown
// identifier and a wrong password both return ErrInvalidCredentials, with
// comparable timing, so callers cannot enumerate identifiers.
func (s *credentialStore) Verify(ctx context.Context, identifier, password string) (*entity.Principal, error) {
	principal, err := s.principals.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrPrincipalNotFound) {
			s.hasher.Check(password, dummyHash)

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up principal")
	}

	if !s.hasher.Check(password, principal.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return principal, nil
}
