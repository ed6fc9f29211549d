package main

import (
	"context"
	"log/slog"
	"os"

	"praxis/config"
	"praxis/internal/delivery"
	"praxis/internal/delivery/http"
	"praxis/internal/delivery/http/middleware"
	"praxis/internal/delivery/http/router/handler"
	"praxis/internal/infra/auth"
	logs "praxis/internal/infra/log"
	"praxis/internal/infra/metrics"
	"praxis/internal/infra/persistence/postgres"
	"praxis/internal/infra/session"
	"praxis/internal/infra/storage"
	"praxis/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		storage.NewRoot,
		metrics.NewFromConfig,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPrincipalRepository,
			postgres.NewClientRepository,
			postgres.NewCaseRepository,
			postgres.NewContractRepository,
			postgres.NewDocumentRepository,
			postgres.NewFinancialRepository,
			postgres.NewScheduleRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewCredentialStore,
			session.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewClientService,
			impl.NewCaseService,
			impl.NewContractService,
			impl.NewDocumentService,
			impl.NewFinancialService,
			impl.NewScheduleService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewClientHandler,
			handler.NewCaseHandler,
			handler.NewContractHandler,
			handler.NewDocumentHandler,
			handler.NewFinancialHandler,
			handler.NewScheduleHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
