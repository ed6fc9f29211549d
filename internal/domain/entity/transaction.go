package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a financial movement on a client's account.
type TransactionKind string

const (
	TransactionHonorario TransactionKind = "honorario" // Fee income.
	TransactionDespesa   TransactionKind = "despesa"   // Case expense.
	TransactionReembolso TransactionKind = "reembolso" // Reimbursement to the client.
)

// IsValid checks if the TransactionKind is a valid value.
func (k TransactionKind) IsValid() bool {
	switch k {
	case TransactionHonorario, TransactionDespesa, TransactionReembolso:
		return true
	default:
		return false
	}
}

// Transaction is a financial record owned by a Client.
// Deletion is an admin-only destructive operation.
type Transaction struct {
	ID          uuid.UUID
	ClientID    uuid.UUID // Owning client. Immutable after creation.
	Kind        TransactionKind
	Amount      float64
	Description string
	OccurredAt  time.Time
	CreatedAt   time.Time
}
