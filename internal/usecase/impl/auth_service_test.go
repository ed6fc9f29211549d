package impl

import (
	"context"
	"testing"
	"time"

	"praxis/config"
	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/service"
	"praxis/internal/infra/session"
	"praxis/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier is a canned credential verifier.
type fakeVerifier struct {
	principal *entity.Principal
	password  string
}

func (f *fakeVerifier) Verify(_ context.Context, identifier, password string) (*entity.Principal, error) {
	if f.principal == nil || identifier != f.principal.Identifier || password != f.password {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return f.principal, nil
}

func newAuthFixture(t *testing.T) (usecase.AuthUsecase, service.SessionManager) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session.TTL = time.Hour
	sessions := session.NewMemoryStore(cfg, testLogger())

	verifier := &fakeVerifier{
		principal: &entity.Principal{
			ID:         uuid.New(),
			Kind:       entity.KindSystemUser,
			Role:       entity.RoleAdvogado,
			Identifier: "adv@escritorio.br",
		},
		password: "Segredo123!",
	}

	svc := NewAuthService(AuthServiceParams{
		Verifier: verifier,
		Sessions: sessions,
		Logger:   testLogger(),
	})

	return svc, sessions
}

func TestAuthService_LoginIssuesValidSession(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	out, err := svc.Login(ctx, usecase.LoginInput{Identifier: "adv@escritorio.br", Password: "Segredo123!"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdvogado, out.Role)
	assert.True(t, out.ExpiresAt.After(time.Now()))

	sess, err := sessions.Validate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.KindSystemUser, sess.Kind)
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, errWrongPassword := svc.Login(ctx, usecase.LoginInput{Identifier: "adv@escritorio.br", Password: "errada"})
	_, errUnknown := svc.Login(ctx, usecase.LoginInput{Identifier: "fantasma@escritorio.br", Password: "Segredo123!"})

	assert.ErrorIs(t, errWrongPassword, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword, errUnknown)
}

func TestAuthService_LogoutDestroysSession(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	out, err := svc.Login(ctx, usecase.LoginInput{Identifier: "adv@escritorio.br", Password: "Segredo123!"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, out.Token))

	_, err = sessions.Validate(ctx, out.Token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)

	// Logging out twice is fine.
	assert.NoError(t, svc.Logout(ctx, out.Token))
}
