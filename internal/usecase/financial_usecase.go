package usecase

import (
	"context"
	"time"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTransactionInput defines the data for a new financial record.
type CreateTransactionInput struct {
	ClientID    uuid.UUID
	Kind        entity.TransactionKind
	Amount      float64
	Description string
	OccurredAt  time.Time
}

// UpdateTransactionInput carries the mutable fields of a transaction.
type UpdateTransactionInput struct {
	ClientID    *uuid.UUID // Optional payload owner, must match the record when set.
	Kind        entity.TransactionKind
	Amount      float64
	Description string
	OccurredAt  time.Time
}

// FinancialUsecase defines financial record operations. Deletion is
// admin-only; the other staff roles may read and write.
type FinancialUsecase interface {
	GetTransaction(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Transaction, error)
	ListTransactionsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Transaction, error)
	CreateTransaction(ctx context.Context, sess *entity.Session, input CreateTransactionInput) (*entity.Transaction, error)
	UpdateTransaction(ctx context.Context, sess *entity.Session, id uuid.UUID, input UpdateTransactionInput) (*entity.Transaction, error)
	DeleteTransaction(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}
