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

// caseRepository implements the domain.CaseRepository interface using GORM.
type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository is the constructor for caseRepository.
func NewCaseRepository(db *gorm.DB) repository.CaseRepository {
	return &caseRepository{db: db}
}

func (repo *caseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Case, error) {
	caseM := new(model.CaseModel)
	err := repo.db.WithContext(ctx).
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("occurred_at ASC")
		}).
		Where("id = ?", id).
		First(caseM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find case by id")
	}

	return toCaseDomain(caseM), nil
}

func (repo *caseRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Case, error) {
	var caseMs []model.CaseModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&caseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cases by client")
	}

	cases := make([]*entity.Case, 0, len(caseMs))
	for i := range caseMs {
		cases = append(cases, toCaseDomain(&caseMs[i]))
	}

	return cases, nil
}

func (repo *caseRepository) Create(ctx context.Context, c *entity.Case) error {
	caseM := fromCaseDomain(c)

	if err := repo.db.WithContext(ctx).Create(caseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required case fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create case")
	}

	c.ID = caseM.ID
	c.CreatedAt = caseM.CreatedAt
	c.UpdatedAt = caseM.UpdatedAt

	return nil
}

// Update never touches client_id: ownership is immutable and the usecase
// rejects attempts to change it before reaching this point.
func (repo *caseRepository) Update(ctx context.Context, c *entity.Case) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CaseModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"number":  c.Number,
			"court":   c.Court,
			"subject": c.Subject,
			"status":  string(c.Status),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update case")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCaseNotFound
	}

	return nil
}

// Delete removes the case and its own logs. Logs go first so the foreign key
// never blocks the parent delete.
func (repo *caseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("case_id = ?", id).
		Delete(&model.CaseLogModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete case logs")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CaseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete case")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCaseNotFound
	}

	return nil
}

func (repo *caseRepository) AddLog(ctx context.Context, log *entity.CaseLog) error {
	logM := fromCaseLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCaseNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add case log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

func (repo *caseRepository) DeleteLogsByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("case_id IN (?)", repo.db.
			Model(&model.CaseModel{}).
			Select("id").
			Where("client_id = ?", clientID),
		).
		Delete(&model.CaseLogModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete case logs by client")
	}

	return result.RowsAffected, nil
}

func (repo *caseRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.CaseModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete cases by client")
	}

	return result.RowsAffected, nil
}

func toCaseDomain(m *model.CaseModel) *entity.Case {
	logs := make([]*entity.CaseLog, 0, len(m.Logs))
	for i := range m.Logs {
		logs = append(logs, toCaseLogDomain(&m.Logs[i]))
	}

	return &entity.Case{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Number:    m.Number,
		Court:     m.Court,
		Subject:   m.Subject,
		Status:    entity.CaseStatus(m.Status),
		Logs:      logs,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromCaseDomain(c *entity.Case) *model.CaseModel {
	return &model.CaseModel{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Number:    c.Number,
		Court:     c.Court,
		Subject:   c.Subject,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCaseLogDomain(m *model.CaseLogModel) *entity.CaseLog {
	return &entity.CaseLog{
		ID:         m.ID,
		CaseID:     m.CaseID,
		EntryType:  m.EntryType,
		Content:    m.Content,
		OccurredAt: m.OccurredAt,
		CreatedAt:  m.CreatedAt,
	}
}

func fromCaseLogDomain(l *entity.CaseLog) *model.CaseLogModel {
	return &model.CaseLogModel{
		ID:         l.ID,
		CaseID:     l.CaseID,
		EntryType:  l.EntryType,
		Content:    l.Content,
		OccurredAt: l.OccurredAt,
		CreatedAt:  l.CreatedAt,
	}
}
