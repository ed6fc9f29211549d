package repository

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContractNotFound is returned when a contract lookup misses.
var ErrContractNotFound = errors.New("contract not found")

// ContractRepository persists fee agreements.
type ContractRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Contract, error)
	Create(ctx context.Context, contract *entity.Contract) error
	Update(ctx context.Context, contract *entity.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByClient removes every contract owned by the client.
	DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
