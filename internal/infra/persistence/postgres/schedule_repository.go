package postgres

import (
	"context"

	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/repository"
	"praxis/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scheduleRepository implements the domain.ScheduleRepository interface using GORM.
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	eventM := new(model.EventModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDomain(eventM), nil
}

func (repo *scheduleRepository) ListEventsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Event, error) {
	var eventMs []model.EventModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("starts_at ASC").
		Find(&eventMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events by client")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for i := range eventMs {
		events = append(events, toEventDomain(&eventMs[i]))
	}

	return events, nil
}

func (repo *scheduleRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

func (repo *scheduleRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"client_id": event.ClientID,
			"title":     event.Title,
			"location":  event.Location,
			"starts_at": event.StartsAt,
			"ends_at":   event.EndsAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

func (repo *scheduleRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

func (repo *scheduleRepository) FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	taskM := new(model.TaskModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(taskM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(taskM), nil
}

func (repo *scheduleRepository) ListTasksByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Task, error) {
	var taskMs []model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("due_at ASC NULLS LAST").
		Find(&taskMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks by client")
	}

	tasks := make([]*entity.Task, 0, len(taskMs))
	for i := range taskMs {
		tasks = append(tasks, toTaskDomain(&taskMs[i]))
	}

	return tasks, nil
}

func (repo *scheduleRepository) CreateTask(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

func (repo *scheduleRepository) UpdateTask(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"client_id":   task.ClientID,
			"title":       task.Title,
			"description": task.Description,
			"due_at":      task.DueAt,
			"done":        task.Done,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (repo *scheduleRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

func (repo *scheduleRepository) UnlinkEventsByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to unlink events by client")
	}

	return result.RowsAffected, nil
}

func (repo *scheduleRepository) UnlinkTasksByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("client_id = ?", clientID).
		Update("client_id", nil)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to unlink tasks by client")
	}

	return result.RowsAffected, nil
}

func toEventDomain(m *model.EventModel) *entity.Event {
	return &entity.Event{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Title:     m.Title,
		Location:  m.Location,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromEventDomain(e *entity.Event) *model.EventModel {
	return &model.EventModel{
		ID:        e.ID,
		ClientID:  e.ClientID,
		Title:     e.Title,
		Location:  e.Location,
		StartsAt:  e.StartsAt,
		EndsAt:    e.EndsAt,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toTaskDomain(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Title:       m.Title,
		Description: m.Description,
		DueAt:       m.DueAt,
		Done:        m.Done,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromTaskDomain(t *entity.Task) *model.TaskModel {
	return &model.TaskModel{
		ID:          t.ID,
		ClientID:    t.ClientID,
		Title:       t.Title,
		Description: t.Description,
		DueAt:       t.DueAt,
		Done:        t.Done,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
