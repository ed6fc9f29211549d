package impl

import (
	"context"
	"log/slog"

	deliverycontext "praxis/internal/delivery/context"
	"praxis/internal/domain/authz"
	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/repository"
	"praxis/internal/infra/metrics"
	"praxis/internal/infra/storage"
	"praxis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// clientService implements the ClientUsecase interface, including the client
// deletion cascade.
type clientService struct {
	txManager   repository.TransactionManager
	clientRepo  repository.ClientRepository
	storageRoot *storage.Root
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// ClientServiceParams holds dependencies for clientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ClientRepo  repository.ClientRepository
	StorageRoot *storage.Root
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		txManager:   params.TxManager,
		clientRepo:  params.ClientRepo,
		storageRoot: params.StorageRoot,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *clientService) GetClient(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Client, error) {
	if err := guardOwned(sess, authz.ResourceClient, authz.ActionRead, id); err != nil {
		return nil, err
	}

	client, err := srv.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return client, nil
}

// ListClients returns the full roster for staff. A portal session only ever
// sees its own client record.
func (srv *clientService) ListClients(ctx context.Context, sess *entity.Session) ([]*entity.Client, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceClient, Action: authz.ActionRead}); err != nil {
		return nil, err
	}

	if sess.Kind == entity.KindClient {
		own, err := srv.GetClient(ctx, sess, *sess.ClientID)
		if err != nil {
			return nil, err
		}

		return []*entity.Client{own}, nil
	}

	return srv.clientRepo.List(ctx)
}

func (srv *clientService) CreateClient(ctx context.Context, sess *entity.Session, input usecase.CreateClientInput) (*entity.Client, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceClient, Action: authz.ActionCreate}); err != nil {
		return nil, err
	}

	client := &entity.Client{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Document: input.Document,
	}
	if err := srv.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

func (srv *clientService) UpdateClient(ctx context.Context, sess *entity.Session, id uuid.UUID, input usecase.UpdateClientInput) (*entity.Client, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceClient, Action: authz.ActionUpdate}); err != nil {
		return nil, err
	}
	if input.ID != nil && *input.ID != id {
		return nil, domainerrors.ErrImmutableField
	}

	client := &entity.Client{
		ID:       id,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Document: input.Document,
	}
	if err := srv.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return srv.clientRepo.FindByID(ctx, id)
}

// DeleteClient removes a client and everything it owns in one transaction.
// Deletion order is children before parents: case logs, cases, contracts,
// document rows, transactions, then unlink events and tasks, drop portal
// logins and finally the client row. Document files on disk are collected
// first and removed only after the commit, so a rollback never leaves
// dangling metadata pointing at deleted files.
func (srv *clientService) DeleteClient(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.CascadeSummary, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceClient, Action: authz.ActionDelete}); err != nil {
		return nil, err
	}

	summary := new(entity.CascadeSummary)
	var storagePaths []string

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.ClientRepo().FindByID(ctx, id); err != nil {
			return err
		}

		docs, err := f.DocumentRepo().ListByClient(ctx, id)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			storagePaths = append(storagePaths, doc.StoragePath)
		}

		if summary.CaseLogs, err = f.CaseRepo().DeleteLogsByClient(ctx, id); err != nil {
			return err
		}
		if summary.Cases, err = f.CaseRepo().DeleteByClient(ctx, id); err != nil {
			return err
		}
		if summary.Contracts, err = f.ContractRepo().DeleteByClient(ctx, id); err != nil {
			return err
		}
		if summary.Documents, err = f.DocumentRepo().DeleteByClient(ctx, id); err != nil {
			return err
		}
		if summary.Transactions, err = f.FinancialRepo().DeleteByClient(ctx, id); err != nil {
			return err
		}
		if summary.EventsUnlinked, err = f.ScheduleRepo().UnlinkEventsByClient(ctx, id); err != nil {
			return err
		}
		if summary.TasksUnlinked, err = f.ScheduleRepo().UnlinkTasksByClient(ctx, id); err != nil {
			return err
		}
		if _, err = f.PrincipalRepo().DeleteByClient(ctx, id); err != nil {
			return err
		}

		return f.ClientRepo().Delete(ctx, id)
	})
	if err != nil {
		srv.metrics.CascadeRolledBack()
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		srv.log(ctx).Error("client cascade rolled back",
			slog.String("client_id", id.String()),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrCascadeFailed
	}

	srv.metrics.CascadeCommitted()
	srv.removeFiles(ctx, id, storagePaths)

	srv.log(ctx).Info("client cascade committed",
		slog.String("client_id", id.String()),
		slog.Int64("cases", summary.Cases),
		slog.Int64("documents", summary.Documents),
	)

	return summary, nil
}

// removeFiles deletes the documents' bytes after the transaction committed.
// Failures are logged and left for an operator: the rows are already gone,
// so a retry of the request would be a no-op.
func (srv *clientService) removeFiles(ctx context.Context, clientID uuid.UUID, paths []string) {
	for _, path := range paths {
		if err := srv.storageRoot.Remove(path); err != nil {
			srv.log(ctx).Warn("failed to remove document file after cascade",
				slog.String("client_id", clientID.String()),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}
}
