package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an issued login session bound to a principal.
// It lives only inside the session store (memory or Redis) and is never
// persisted as a durable record; logout or expiry destroys it.
type Session struct {
	Token       string        // Opaque high-entropy bearer token.
	PrincipalID uuid.UUID     // The principal this session authenticates.
	Kind        PrincipalKind // Copied from the principal at login.
	Role        Role          // Copied from the principal at login.
	ClientID    *uuid.UUID    // Owning client, set iff Kind is KindClient.
	CreatedAt   time.Time
	ExpiresAt   time.Time // Fixed window: CreatedAt + configured TTL.
}

// Expired reports whether the session is past its fixed expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
