package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "praxis/internal/delivery/context"
	"praxis/internal/domain/authz"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware resolves bearer tokens to live sessions and exposes
// role-based gates for route groups.
type AuthMiddleware struct {
	sessions service.SessionManager
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionManager, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, logger: logger}
}

// Authenticate validates the bearer token against the session store and
// stores the session on the request context. A missing, malformed, unknown
// or expired token fails with the same unauthenticated error; the reasons
// are never distinguished in the response.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		sess, err := m.sessions.Validate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}

			return errors.WithStack(err)
		}

		deliverycontext.SetSession(c, sess)

		return next(c)
	}
}

// RequireCapability is a middleware factory gating a route group on the
// authorization guard, before any record is loaded. Owner-scoped operations
// are re-checked in the use case once the concrete owner is known.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(resource authz.Resource, action authz.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := deliverycontext.GetSession(c)

			decision := authz.Authorize(sess, authz.Operation{Resource: resource, Action: action})
			if !decision.Allowed {
				if decision.Reason == authz.ReasonUnauthenticated {
					return errors.WithStack(domainerrors.ErrUnauthenticated)
				}

				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}
