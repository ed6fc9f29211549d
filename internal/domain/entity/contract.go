package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contract is a fee agreement owned by a Client.
type Contract struct {
	ID          uuid.UUID
	ClientID    uuid.UUID // Owning client. Immutable after creation.
	Description string
	Value       float64
	SignedAt    *time.Time // Nil while the contract is still a draft.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
