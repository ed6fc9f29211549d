package impl

import (
	"context"
	"log/slog"

	"praxis/internal/domain/authz"
	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/repository"
	"praxis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contractService implements the ContractUsecase interface.
type contractService struct {
	contractRepo repository.ContractRepository
	clientRepo   repository.ClientRepository
	logger       *slog.Logger
}

// ContractServiceParams holds dependencies for contractService, injected by Fx.
type ContractServiceParams struct {
	fx.In

	ContractRepo repository.ContractRepository
	ClientRepo   repository.ClientRepository
	Logger       *slog.Logger
}

// NewContractService is the constructor for contractService.
func NewContractService(params ContractServiceParams) usecase.ContractUsecase {
	return &contractService{
		contractRepo: params.ContractRepo,
		clientRepo:   params.ClientRepo,
		logger:       params.Logger,
	}
}

func (srv *contractService) loadGuarded(ctx context.Context, sess *entity.Session, id uuid.UUID, action authz.Action) (*entity.Contract, error) {
	contract, err := srv.contractRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}
	if err := guardOwned(sess, authz.ResourceContract, action, contract.ClientID); err != nil {
		return nil, err
	}

	return contract, nil
}

func (srv *contractService) GetContract(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Contract, error) {
	return srv.loadGuarded(ctx, sess, id, authz.ActionRead)
}

func (srv *contractService) ListContractsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Contract, error) {
	if err := guardOwned(sess, authz.ResourceContract, authz.ActionRead, clientID); err != nil {
		return nil, err
	}

	return srv.contractRepo.ListByClient(ctx, clientID)
}

func (srv *contractService) CreateContract(ctx context.Context, sess *entity.Session, input usecase.CreateContractInput) (*entity.Contract, error) {
	if err := guardOwned(sess, authz.ResourceContract, authz.ActionCreate, input.ClientID); err != nil {
		return nil, err
	}
	if _, err := srv.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrValidation.WithDetails("owning client does not exist")
		}

		return nil, err
	}

	contract := &entity.Contract{
		ClientID:    input.ClientID,
		Description: input.Description,
		Value:       input.Value,
		SignedAt:    input.SignedAt,
	}
	if err := srv.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	return contract, nil
}

func (srv *contractService) UpdateContract(ctx context.Context, sess *entity.Session, id uuid.UUID, input usecase.UpdateContractInput) (*entity.Contract, error) {
	stored, err := srv.loadGuarded(ctx, sess, id, authz.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if input.ClientID != nil && *input.ClientID != stored.ClientID {
		return nil, domainerrors.ErrImmutableField
	}

	stored.Description = input.Description
	stored.Value = input.Value
	stored.SignedAt = input.SignedAt
	if err := srv.contractRepo.Update(ctx, stored); err != nil {
		return nil, err
	}

	return srv.contractRepo.FindByID(ctx, id)
}

// DeleteContract is a leaf delete: only the contract row goes.
func (srv *contractService) DeleteContract(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if _, err := srv.loadGuarded(ctx, sess, id, authz.ActionDelete); err != nil {
		return err
	}

	if err := srv.contractRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}
