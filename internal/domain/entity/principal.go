// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalKind distinguishes the two kinds of authenticated actor:
// office staff (system users) and customers using the portal.
type PrincipalKind string

const (
	// KindSystemUser is an office account (admin, advogado or estagiario).
	KindSystemUser PrincipalKind = "system_user"
	// KindClient is a portal account belonging to a single Client record.
	KindClient PrincipalKind = "client"
)

// String returns the string representation of the PrincipalKind.
func (k PrincipalKind) String() string {
	return string(k)
}

// IsValid checks if the PrincipalKind is a valid value.
func (k PrincipalKind) IsValid() bool {
	switch k {
	case KindSystemUser, KindClient:
		return true
	default:
		return false
	}
}

// Role represents the authorization role of a principal.
// A system user's role is fixed at creation; a portal principal is always RoleClient.
type Role string

const (
	// RoleAdmin may perform every operation, including destructive ones.
	RoleAdmin Role = "admin"
	// RoleAdvogado is a lawyer: full non-destructive CRUD on office records.
	RoleAdvogado Role = "advogado"
	// RoleEstagiario is an intern: same surface as RoleAdvogado.
	RoleEstagiario Role = "estagiario"
	// RoleClient is the fixed role of portal principals.
	RoleClient Role = "client"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAdvogado, RoleEstagiario, RoleClient:
		return true
	default:
		return false
	}
}

// SystemRoles enumerates the roles a system user may hold.
func SystemRoles() []Role {
	return []Role{RoleAdmin, RoleAdvogado, RoleEstagiario}
}

// Principal is an authenticated actor: a system user or a portal client.
// Exactly one active credential hash exists per principal, and the role is
// immutable after creation.
type Principal struct {
	ID           uuid.UUID     // Unique identifier of the principal.
	Kind         PrincipalKind // system_user or client.
	Role         Role          // Fixed at creation; RoleClient iff Kind is KindClient.
	Identifier   string        // Login identifier (e-mail).
	PasswordHash string        // bcrypt hash of the current credential. Never exposed outside the credential store.
	ClientID     *uuid.UUID    // Set iff Kind is KindClient: the Client record this portal account belongs to.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
