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

// caseService implements the CaseUsecase interface.
type caseService struct {
	caseRepo   repository.CaseRepository
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// CaseServiceParams holds dependencies for caseService, injected by Fx.
type CaseServiceParams struct {
	fx.In

	CaseRepo   repository.CaseRepository
	ClientRepo repository.ClientRepository
	Logger     *slog.Logger
}

// NewCaseService is the constructor for caseService.
func NewCaseService(params CaseServiceParams) usecase.CaseUsecase {
	return &caseService{
		caseRepo:   params.CaseRepo,
		clientRepo: params.ClientRepo,
		logger:     params.Logger,
	}
}

// loadGuarded fetches the case and re-checks the operation against its owner.
func (srv *caseService) loadGuarded(ctx context.Context, sess *entity.Session, id uuid.UUID, action authz.Action) (*entity.Case, error) {
	c, err := srv.caseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}
	if err := guardOwned(sess, authz.ResourceCase, action, c.ClientID); err != nil {
		return nil, err
	}

	return c, nil
}

func (srv *caseService) GetCase(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Case, error) {
	return srv.loadGuarded(ctx, sess, id, authz.ActionRead)
}

func (srv *caseService) ListCasesByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Case, error) {
	if err := guardOwned(sess, authz.ResourceCase, authz.ActionRead, clientID); err != nil {
		return nil, err
	}

	return srv.caseRepo.ListByClient(ctx, clientID)
}

func (srv *caseService) CreateCase(ctx context.Context, sess *entity.Session, input usecase.CreateCaseInput) (*entity.Case, error) {
	if err := guardOwned(sess, authz.ResourceCase, authz.ActionCreate, input.ClientID); err != nil {
		return nil, err
	}
	if _, err := srv.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrValidation.WithDetails("owning client does not exist")
		}

		return nil, err
	}

	c := &entity.Case{
		ClientID: input.ClientID,
		Number:   input.Number,
		Court:    input.Court,
		Subject:  input.Subject,
		Status:   entity.CaseStatusActive,
	}
	if err := srv.caseRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (srv *caseService) UpdateCase(ctx context.Context, sess *entity.Session, id uuid.UUID, input usecase.UpdateCaseInput) (*entity.Case, error) {
	stored, err := srv.loadGuarded(ctx, sess, id, authz.ActionUpdate)
	if err != nil {
		return nil, err
	}
	if input.ClientID != nil && *input.ClientID != stored.ClientID {
		return nil, domainerrors.ErrImmutableField
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown case status")
	}

	stored.Number = input.Number
	stored.Court = input.Court
	stored.Subject = input.Subject
	if input.Status != "" {
		stored.Status = input.Status
	}
	if err := srv.caseRepo.Update(ctx, stored); err != nil {
		return nil, err
	}

	return srv.caseRepo.FindByID(ctx, id)
}

// DeleteCase removes the case and its logs. This is a leaf delete: the
// owning client and its other records are never touched.
func (srv *caseService) DeleteCase(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if _, err := srv.loadGuarded(ctx, sess, id, authz.ActionDelete); err != nil {
		return err
	}

	if err := srv.caseRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

func (srv *caseService) AddCaseLog(ctx context.Context, sess *entity.Session, caseID uuid.UUID, input usecase.AddCaseLogInput) (*entity.CaseLog, error) {
	if _, err := srv.loadGuarded(ctx, sess, caseID, authz.ActionUpdate); err != nil {
		return nil, err
	}

	log := &entity.CaseLog{
		CaseID:     caseID,
		EntryType:  input.EntryType,
		Content:    input.Content,
		OccurredAt: input.OccurredAt,
	}
	if err := srv.caseRepo.AddLog(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}
