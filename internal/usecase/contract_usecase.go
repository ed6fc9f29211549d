package usecase

import (
	"context"
	"time"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateContractInput defines the data required to register a fee agreement.
type CreateContractInput struct {
	ClientID    uuid.UUID
	Description string
	Value       float64
	SignedAt    *time.Time
}

// UpdateContractInput carries the mutable fields of a contract.
type UpdateContractInput struct {
	ClientID    *uuid.UUID // Optional payload owner, must match the record when set.
	Description string
	Value       float64
	SignedAt    *time.Time
}

// ContractUsecase defines fee agreement operations.
type ContractUsecase interface {
	GetContract(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Contract, error)
	ListContractsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Contract, error)
	CreateContract(ctx context.Context, sess *entity.Session, input CreateContractInput) (*entity.Contract, error)
	UpdateContract(ctx context.Context, sess *entity.Session, id uuid.UUID, input UpdateContractInput) (*entity.Contract, error)
	DeleteContract(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}
