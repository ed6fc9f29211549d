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

// clientRepository implements the domain.ClientRepository interface using GORM.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	clientM := new(model.ClientModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(clientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by id")
	}

	return toClientDomain(clientM), nil
}

func (repo *clientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	var clientMs []model.ClientModel
	err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&clientMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(clientMs))
	for i := range clientMs {
		clients = append(clients, toClientDomain(&clientMs[i]))
	}

	return clients, nil
}

func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("client already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required client fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":     client.Name,
			"email":    client.Email,
			"phone":    client.Phone,
			"document": client.Document,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

func (repo *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClientModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			// Owned rows still reference the client; the cascade must run first.
			return domainerrors.ErrCascadeFailed.WrapMessage("client still has owned records")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete client")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

func toClientDomain(m *model.ClientModel) *entity.Client {
	return &entity.Client{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Document:  m.Document,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromClientDomain(c *entity.Client) *model.ClientModel {
	return &model.ClientModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Document:  c.Document,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
