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

// contractRepository implements the domain.ContractRepository interface using GORM.
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository is the constructor for contractRepository.
func NewContractRepository(db *gorm.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func (repo *contractRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	contractM := new(model.ContractModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(contractM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract by id")
	}

	return toContractDomain(contractM), nil
}

func (repo *contractRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Contract, error) {
	var contractMs []model.ContractModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&contractMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contracts by client")
	}

	contracts := make([]*entity.Contract, 0, len(contractMs))
	for i := range contractMs {
		contracts = append(contracts, toContractDomain(&contractMs[i]))
	}

	return contracts, nil
}

func (repo *contractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	contractM := fromContractDomain(contract)

	if err := repo.db.WithContext(ctx).Create(contractM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required contract fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contract")
	}

	contract.ID = contractM.ID
	contract.CreatedAt = contractM.CreatedAt
	contract.UpdatedAt = contractM.UpdatedAt

	return nil
}

func (repo *contractRepository) Update(ctx context.Context, contract *entity.Contract) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContractModel{}).
		Where("id = ?", contract.ID).
		Updates(map[string]any{
			"description": contract.Description,
			"value":       contract.Value,
			"signed_at":   contract.SignedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contract")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContractNotFound
	}

	return nil
}

func (repo *contractRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContractModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contract")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContractNotFound
	}

	return nil
}

func (repo *contractRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.ContractModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete contracts by client")
	}

	return result.RowsAffected, nil
}

func toContractDomain(m *model.ContractModel) *entity.Contract {
	return &entity.Contract{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Description: m.Description,
		Value:       m.Value,
		SignedAt:    m.SignedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromContractDomain(c *entity.Contract) *model.ContractModel {
	return &model.ContractModel{
		ID:          c.ID,
		ClientID:    c.ClientID,
		Description: c.Description,
		Value:       c.Value,
		SignedAt:    c.SignedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
