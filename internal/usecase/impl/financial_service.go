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

// financialService implements the FinancialUsecase interface.
type financialService struct {
	financialRepo repository.FinancialRepository
	clientRepo    repository.ClientRepository
	logger        *slog.Logger
}

// FinancialServiceParams holds dependencies for financialService, injected by Fx.
type FinancialServiceParams struct {
	fx.In

	FinancialRepo repository.FinancialRepository
	ClientRepo    repository.ClientRepository
	Logger        *slog.Logger
}

// NewFinancialService is the constructor for financialService.
func NewFinancialService(params FinancialServiceParams) usecase.FinancialUsecase {
	return &financialService{
		financialRepo: params.FinancialRepo,
		clientRepo:    params.ClientRepo,
		logger:        params.Logger,
	}
}

func (srv *financialService) loadGuarded(ctx context.Context, sess *entity.Session, id uuid.UUID, action authz.Action) (*entity.Transaction, error) {
	tx, err := srv.financialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}
	if err := guardOwned(sess, authz.ResourceTransaction, action, tx.ClientID); err != nil {
		return nil, err
	}

	return tx, nil
}

func (srv *financialService) GetTransaction(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Transaction, error) {
	return srv.loadGuarded(ctx, sess, id, authz.ActionRead)
}

func (srv *financialService) ListTransactionsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Transaction, error) {
	if err := guardOwned(sess, authz.ResourceTransaction, authz.ActionRead, clientID); err != nil {
		return nil, err
	}

	return srv.financialRepo.ListByClient(ctx, clientID)
}

func (srv *financialService) CreateTransaction(ctx context.Context, sess *entity.Session, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	if err := guardOwned(sess, authz.ResourceTransaction, authz.ActionCreate, input.ClientID); err != nil {
		return nil, err
	}
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown transaction kind")
	}
	if _, err := srv.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrValidation.WithDetails("owning client does not exist")
		}

		return nil, err
	}

	tx := &entity.Transaction{
		ClientID:    input.ClientID,
		Kind:        input.Kind,
		Amount:      input.Amount,
		Description: input.Description,
		OccurredAt:  input.OccurredAt,
	}
	if err := srv.financialRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (srv *financialService) UpdateTransaction(ctx context.Context, sess *entity.Session, id uuid.UUID, input usecase.UpdateTransactionInput) (*entity.Transaction, error) {
	stored, err := srv.loadGuarded(ctx, sess, id, authz.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if input.ClientID != nil && *input.ClientID != stored.ClientID {
		return nil, domainerrors.ErrImmutableField
	}
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown transaction kind")
	}

	stored.Kind = input.Kind
	stored.Amount = input.Amount
	stored.Description = input.Description
	stored.OccurredAt = input.OccurredAt
	if err := srv.financialRepo.Update(ctx, stored); err != nil {
		return nil, err
	}

	return srv.financialRepo.FindByID(ctx, id)
}

// DeleteTransaction is admin-only; the authorization table denies the other
// staff roles before this method touches the repository.
func (srv *financialService) DeleteTransaction(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if _, err := srv.loadGuarded(ctx, sess, id, authz.ActionDelete); err != nil {
		return err
	}

	if err := srv.financialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}
