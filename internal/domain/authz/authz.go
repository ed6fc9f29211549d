// Package authz centralizes the (role × operation) decision table as one pure
// function consulted by every sensitive route. There is no implicit-allow
// default: every combination resolves to Allowed or a specific denial reason.
package authz

import (
	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// Resource is the kind of record an operation targets.
type Resource string

const (
	ResourceClient      Resource = "client"
	ResourceCase        Resource = "case"
	ResourceContract    Resource = "contract"
	ResourceDocument    Resource = "document"
	ResourceTransaction Resource = "transaction"
	ResourceEvent       Resource = "event"
	ResourceTask        Resource = "task"
	ResourceSettings    Resource = "settings"
)

// Action is what the operation does to the resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Operation pairs a resource kind with an action and an optional owner
// constraint. OwnerID, when set, is the id of the client that owns the
// targeted record. A nil OwnerID is a capability check: routes consult it
// before the concrete owner is known, and owner-scoped callers must consult
// the guard again once the record has been loaded.
type Operation struct {
	Resource Resource
	Action   Action
	OwnerID  *uuid.UUID
}

// DenyReason says why an operation was denied.
type DenyReason string

const (
	// ReasonUnauthenticated: no valid session.
	ReasonUnauthenticated DenyReason = "unauthenticated"
	// ReasonForbidden: authenticated but the principal may never perform the
	// operation, or it targets another client's records.
	ReasonForbidden DenyReason = "forbidden"
	// ReasonRoleInsufficient: the operation exists for system users but the
	// session's role does not permit it.
	ReasonRoleInsufficient DenyReason = "role_insufficient"
)

// Decision is the guard's verdict.
type Decision struct {
	Allowed bool
	Reason  DenyReason // Set iff Allowed is false.
}

var allowed = Decision{Allowed: true}

func denied(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize decides whether the session may perform the operation.
// Rules, in priority order:
//
//  1. No valid session: denied (unauthenticated).
//  2. Portal clients: reads scoped to their own client id, plus uploading
//     documents to their own file; everything else is forbidden.
//  3. Admin: allowed for all operations, including destructive ones.
//  4. Advogado/estagiario: non-destructive CRUD on office records; deleting a
//     client or a transaction, and settings changes, are role-insufficient.
//
// The function is total: any session shape not matched above is denied, never
// silently allowed.
func Authorize(sess *entity.Session, op Operation) Decision {
	if sess == nil {
		return denied(ReasonUnauthenticated)
	}

	switch sess.Kind {
	case entity.KindClient:
		return authorizeClient(sess, op)
	case entity.KindSystemUser:
		return authorizeSystemUser(sess, op)
	default:
		return denied(ReasonForbidden)
	}
}

// authorizeClient gates portal principals. Ownership is checked whenever the
// operation carries an owner constraint; cross-client access is always
// forbidden, regardless of whether the record exists.
func authorizeClient(sess *entity.Session, op Operation) Decision {
	if sess.Role != entity.RoleClient || sess.ClientID == nil {
		return denied(ReasonForbidden)
	}
	if op.Resource == ResourceSettings {
		return denied(ReasonForbidden)
	}
	if op.OwnerID != nil && *op.OwnerID != *sess.ClientID {
		return denied(ReasonForbidden)
	}

	switch op.Action {
	case ActionRead:
		return allowed
	case ActionCreate:
		// Limited write surface: portal clients may upload their own documents.
		if op.Resource == ResourceDocument {
			return allowed
		}
		return denied(ReasonForbidden)
	case ActionUpdate, ActionDelete:
		return denied(ReasonForbidden)
	default:
		return denied(ReasonForbidden)
	}
}

func authorizeSystemUser(sess *entity.Session, op Operation) Decision {
	switch sess.Role {
	case entity.RoleAdmin:
		return allowed
	case entity.RoleAdvogado, entity.RoleEstagiario:
		if op.Resource == ResourceSettings {
			return denied(ReasonRoleInsufficient)
		}
		if op.Action == ActionDelete &&
			(op.Resource == ResourceClient || op.Resource == ResourceTransaction) {
			return denied(ReasonRoleInsufficient)
		}
		switch op.Action {
		case ActionRead, ActionCreate, ActionUpdate, ActionDelete:
			return allowed
		default:
			return denied(ReasonForbidden)
		}
	default:
		return denied(ReasonForbidden)
	}
}
