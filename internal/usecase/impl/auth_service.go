package impl

import (
	"context"
	"log/slog"

	deliverycontext "praxis/internal/delivery/context"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/service"
	"praxis/internal/infra/metrics"
	"praxis/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	verifier service.CredentialVerifier
	sessions service.SessionManager
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier service.CredentialVerifier
	Sessions service.SessionManager
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		verifier: params.Verifier,
		sessions: params.Sessions,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credential and issues a session token. The failure path
// logs the identifier but the response body never says what was wrong.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	principal, err := srv.verifier.Verify(ctx, input.Identifier, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.metrics.AuthFailure()
			srv.log(ctx).Warn("login rejected", slog.String("identifier", input.Identifier))
		}

		return nil, err
	}

	sess, err := srv.sessions.Create(ctx, principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("login succeeded",
		slog.String("principal_id", principal.ID.String()),
		slog.String("role", principal.Role.String()),
	)

	return &usecase.LoginOutput{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		Kind:      sess.Kind,
		Role:      sess.Role,
	}, nil
}

// Logout destroys the session. Destroying an absent token is fine: the
// outcome the caller wants (no live session) already holds.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if err := srv.sessions.Destroy(ctx, token); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}
