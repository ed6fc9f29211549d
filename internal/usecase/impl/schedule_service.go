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

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	logger       *slog.Logger
}

// ScheduleServiceParams holds dependencies for scheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	ScheduleRepo repository.ScheduleRepository
	Logger       *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		scheduleRepo: params.ScheduleRepo,
		logger:       params.Logger,
	}
}

func (srv *scheduleService) GetEvent(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Event, error) {
	event, err := srv.scheduleRepo.FindEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}
	if err := guardLinked(sess, authz.ResourceEvent, authz.ActionRead, event.ClientID); err != nil {
		return nil, err
	}

	return event, nil
}

func (srv *scheduleService) ListEventsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Event, error) {
	if err := guardOwned(sess, authz.ResourceEvent, authz.ActionRead, clientID); err != nil {
		return nil, err
	}

	return srv.scheduleRepo.ListEventsByClient(ctx, clientID)
}

func (srv *scheduleService) CreateEvent(ctx context.Context, sess *entity.Session, input usecase.EventInput) (*entity.Event, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceEvent, Action: authz.ActionCreate}); err != nil {
		return nil, err
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.ErrValidation.WithDetails("event must end after it starts")
	}

	event := &entity.Event{
		ClientID: input.ClientID,
		Title:    input.Title,
		Location: input.Location,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}
	if err := srv.scheduleRepo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (srv *scheduleService) UpdateEvent(ctx context.Context, sess *entity.Session, id uuid.UUID, input usecase.EventInput) (*entity.Event, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceEvent, Action: authz.ActionUpdate}); err != nil {
		return nil, err
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.ErrValidation.WithDetails("event must end after it starts")
	}

	event := &entity.Event{
		ID:       id,
		ClientID: input.ClientID,
		Title:    input.Title,
		Location: input.Location,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}
	if err := srv.scheduleRepo.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return srv.scheduleRepo.FindEventByID(ctx, id)
}

func (srv *scheduleService) DeleteEvent(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceEvent, Action: authz.ActionDelete}); err != nil {
		return err
	}

	if err := srv.scheduleRepo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}

func (srv *scheduleService) GetTask(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Task, error) {
	task, err := srv.scheduleRepo.FindTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}
	if err := guardLinked(sess, authz.ResourceTask, authz.ActionRead, task.ClientID); err != nil {
		return nil, err
	}

	return task, nil
}

func (srv *scheduleService) ListTasksByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Task, error) {
	if err := guardOwned(sess, authz.ResourceTask, authz.ActionRead, clientID); err != nil {
		return nil, err
	}

	return srv.scheduleRepo.ListTasksByClient(ctx, clientID)
}

func (srv *scheduleService) CreateTask(ctx context.Context, sess *entity.Session, input usecase.TaskInput) (*entity.Task, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceTask, Action: authz.ActionCreate}); err != nil {
		return nil, err
	}

	task := &entity.Task{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Done:        input.Done,
	}
	if err := srv.scheduleRepo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (srv *scheduleService) UpdateTask(ctx context.Context, sess *entity.Session, id uuid.UUID, input usecase.TaskInput) (*entity.Task, error) {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceTask, Action: authz.ActionUpdate}); err != nil {
		return nil, err
	}

	task := &entity.Task{
		ID:          id,
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		DueAt:       input.DueAt,
		Done:        input.Done,
	}
	if err := srv.scheduleRepo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}

	return srv.scheduleRepo.FindTaskByID(ctx, id)
}

func (srv *scheduleService) DeleteTask(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	if err := guard(sess, authz.Operation{Resource: authz.ResourceTask, Action: authz.ActionDelete}); err != nil {
		return err
	}

	if err := srv.scheduleRepo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}

	return nil
}
