package repository

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a financial transaction lookup misses.
var ErrTransactionNotFound = errors.New("transaction not found")

// FinancialRepository persists the financial transactions of clients.
type FinancialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Transaction, error)
	Create(ctx context.Context, tx *entity.Transaction) error
	Update(ctx context.Context, tx *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByClient removes every transaction owned by the client.
	DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
