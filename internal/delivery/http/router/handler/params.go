package handler

import (
	deliverycontext "praxis/internal/delivery/context"
	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pathUUID parses a route parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidation.WithDetails("invalid " + name))
	}

	return id, nil
}

// session returns the session placed on the context by the auth middleware.
// Handlers pass it to the use case, which re-checks authorization against
// the concrete record.
func session(c echo.Context) *entity.Session {
	return deliverycontext.GetSession(c)
}
