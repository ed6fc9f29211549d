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

// financialRepository implements the domain.FinancialRepository interface using GORM.
type financialRepository struct {
	db *gorm.DB
}

// NewFinancialRepository is the constructor for financialRepository.
func NewFinancialRepository(db *gorm.DB) repository.FinancialRepository {
	return &financialRepository{db: db}
}

func (repo *financialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	txM := new(model.TransactionModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(txM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by id")
	}

	return toTransactionDomain(txM), nil
}

func (repo *financialRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Transaction, error) {
	var txMs []model.TransactionModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("occurred_at DESC").
		Find(&txMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions by client")
	}

	txs := make([]*entity.Transaction, 0, len(txMs))
	for i := range txMs {
		txs = append(txs, toTransactionDomain(&txMs[i]))
	}

	return txs, nil
}

func (repo *financialRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	txM := fromTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required transaction fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

func (repo *financialRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", tx.ID).
		Updates(map[string]any{
			"kind":        string(tx.Kind),
			"amount":      tx.Amount,
			"description": tx.Description,
			"occurred_at": tx.OccurredAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

func (repo *financialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

func (repo *financialRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete transactions by client")
	}

	return result.RowsAffected, nil
}

func toTransactionDomain(m *model.TransactionModel) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Kind:        entity.TransactionKind(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		OccurredAt:  m.OccurredAt,
		CreatedAt:   m.CreatedAt,
	}
}

func fromTransactionDomain(t *entity.Transaction) *model.TransactionModel {
	return &model.TransactionModel{
		ID:          t.ID,
		ClientID:    t.ClientID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Description: t.Description,
		OccurredAt:  t.OccurredAt,
		CreatedAt:   t.CreatedAt,
	}
}
