// Package router contains routing setup for the HTTP delivery.
package router

import (
	"praxis/internal/delivery/http/middleware"
	"praxis/internal/delivery/http/router/handler"
	"praxis/internal/domain/authz"
	"praxis/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ClientHandler    *handler.ClientHandler
	CaseHandler      *handler.CaseHandler
	ContractHandler  *handler.ContractHandler
	DocumentHandler  *handler.DocumentHandler
	FinancialHandler *handler.FinancialHandler
	ScheduleHandler  *handler.ScheduleHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Mutating routes carry a capability gate before the handler runs; the use
// cases re-check authorization against the loaded record, so the gate here
// is only the first of the two checks.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authMW := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus endpoint, only when metrics are enabled.
	if r.params.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.params.Metrics.Handler()))
	}

	// Auth routes. Logout takes the bearer token directly so a token that
	// already expired can still be logged out without a 401.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// Client records, including the cascade delete and the per-client
	// sub-resource listings.
	clientGroup := e.Group("/clients")
	clientGroup.Use(authMW.Authenticate)
	{
		clientGroup.GET("", r.params.ClientHandler.List)
		clientGroup.GET("/:id", r.params.ClientHandler.Get)
		clientGroup.POST("", r.params.ClientHandler.Create,
			authMW.RequireCapability(authz.ResourceClient, authz.ActionCreate))
		clientGroup.PUT("/:id", r.params.ClientHandler.Update,
			authMW.RequireCapability(authz.ResourceClient, authz.ActionUpdate))
		clientGroup.DELETE("/:id", r.params.ClientHandler.Delete,
			authMW.RequireCapability(authz.ResourceClient, authz.ActionDelete))

		clientGroup.GET("/:id/cases", r.params.CaseHandler.ListByClient)
		clientGroup.GET("/:id/contracts", r.params.ContractHandler.ListByClient)
		clientGroup.GET("/:id/documents", r.params.DocumentHandler.ListByClient)
		clientGroup.GET("/:id/transactions", r.params.FinancialHandler.ListByClient)
		clientGroup.GET("/:id/events", r.params.ScheduleHandler.ListEventsByClient)
		clientGroup.GET("/:id/tasks", r.params.ScheduleHandler.ListTasksByClient)
	}

	caseGroup := e.Group("/cases")
	caseGroup.Use(authMW.Authenticate)
	{
		caseGroup.GET("/:id", r.params.CaseHandler.Get)
		caseGroup.POST("", r.params.CaseHandler.Create,
			authMW.RequireCapability(authz.ResourceCase, authz.ActionCreate))
		caseGroup.PUT("/:id", r.params.CaseHandler.Update,
			authMW.RequireCapability(authz.ResourceCase, authz.ActionUpdate))
		caseGroup.DELETE("/:id", r.params.CaseHandler.Delete,
			authMW.RequireCapability(authz.ResourceCase, authz.ActionDelete))
		caseGroup.POST("/:id/logs", r.params.CaseHandler.AddLog,
			authMW.RequireCapability(authz.ResourceCase, authz.ActionUpdate))
	}

	contractGroup := e.Group("/contracts")
	contractGroup.Use(authMW.Authenticate)
	{
		contractGroup.GET("/:id", r.params.ContractHandler.Get)
		contractGroup.POST("", r.params.ContractHandler.Create,
			authMW.RequireCapability(authz.ResourceContract, authz.ActionCreate))
		contractGroup.PUT("/:id", r.params.ContractHandler.Update,
			authMW.RequireCapability(authz.ResourceContract, authz.ActionUpdate))
		contractGroup.DELETE("/:id", r.params.ContractHandler.Delete,
			authMW.RequireCapability(authz.ResourceContract, authz.ActionDelete))
	}

	// Documents, including the secure file gateway. The wildcard route hands
	// the raw remainder of the path to the gateway as hostile input.
	documentGroup := e.Group("/documents")
	documentGroup.Use(authMW.Authenticate)
	{
		documentGroup.GET("/:id", r.params.DocumentHandler.Get)
		documentGroup.POST("", r.params.DocumentHandler.Upload,
			authMW.RequireCapability(authz.ResourceDocument, authz.ActionCreate))
		documentGroup.GET("/files/*", r.params.DocumentHandler.Fetch)
		documentGroup.DELETE("/:id", r.params.DocumentHandler.Delete,
			authMW.RequireCapability(authz.ResourceDocument, authz.ActionDelete))
	}

	transactionGroup := e.Group("/transactions")
	transactionGroup.Use(authMW.Authenticate)
	{
		transactionGroup.GET("/:id", r.params.FinancialHandler.Get)
		transactionGroup.POST("", r.params.FinancialHandler.Create,
			authMW.RequireCapability(authz.ResourceTransaction, authz.ActionCreate))
		transactionGroup.PUT("/:id", r.params.FinancialHandler.Update,
			authMW.RequireCapability(authz.ResourceTransaction, authz.ActionUpdate))
		transactionGroup.DELETE("/:id", r.params.FinancialHandler.Delete,
			authMW.RequireCapability(authz.ResourceTransaction, authz.ActionDelete))
	}

	eventGroup := e.Group("/events")
	eventGroup.Use(authMW.Authenticate)
	{
		eventGroup.GET("/:id", r.params.ScheduleHandler.GetEvent)
		eventGroup.POST("", r.params.ScheduleHandler.CreateEvent,
			authMW.RequireCapability(authz.ResourceEvent, authz.ActionCreate))
		eventGroup.PUT("/:id", r.params.ScheduleHandler.UpdateEvent,
			authMW.RequireCapability(authz.ResourceEvent, authz.ActionUpdate))
		eventGroup.DELETE("/:id", r.params.ScheduleHandler.DeleteEvent,
			authMW.RequireCapability(authz.ResourceEvent, authz.ActionDelete))
	}

	taskGroup := e.Group("/tasks")
	taskGroup.Use(authMW.Authenticate)
	{
		taskGroup.GET("/:id", r.params.ScheduleHandler.GetTask)
		taskGroup.POST("", r.params.ScheduleHandler.CreateTask,
			authMW.RequireCapability(authz.ResourceTask, authz.ActionCreate))
		taskGroup.PUT("/:id", r.params.ScheduleHandler.UpdateTask,
			authMW.RequireCapability(authz.ResourceTask, authz.ActionUpdate))
		taskGroup.DELETE("/:id", r.params.ScheduleHandler.DeleteTask,
			authMW.RequireCapability(authz.ResourceTask, authz.ActionDelete))
	}
}
