// Package impl contains the implementation of the application's business logic.
package impl

import (
	"praxis/internal/domain/authz"
	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"

	"github.com/google/uuid"
)

// guard consults the authorization table and maps a denial to the uniform
// application errors. Role failures and cross-client access collapse into
// the same Forbidden.
func guard(sess *entity.Session, op authz.Operation) error {
	decision := authz.Authorize(sess, op)
	if decision.Allowed {
		return nil
	}
	if decision.Reason == authz.ReasonUnauthenticated {
		return domainerrors.ErrUnauthenticated
	}

	return domainerrors.ErrForbidden
}

// guardOwned re-checks an operation once the record's owner is known.
func guardOwned(sess *entity.Session, resource authz.Resource, action authz.Action, ownerID uuid.UUID) error {
	return guard(sess, authz.Operation{Resource: resource, Action: action, OwnerID: &ownerID})
}

// guardLinked re-checks a read of a record whose client link is optional.
// Portal sessions may only see records linked to their own client, so an
// unlinked record is forbidden to them outright.
func guardLinked(sess *entity.Session, resource authz.Resource, action authz.Action, ownerID *uuid.UUID) error {
	if ownerID == nil {
		if sess != nil && sess.Kind == entity.KindClient {
			return domainerrors.ErrForbidden
		}

		return guard(sess, authz.Operation{Resource: resource, Action: action})
	}

	return guardOwned(sess, resource, action, *ownerID)
}
