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

// principalRepository implements the domain.PrincipalRepository interface using GORM.
type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository is the constructor for principalRepository.
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

func (repo *principalRepository) FindByIdentifier(ctx context.Context, identifier string) (*entity.Principal, error) {
	principalM := new(model.PrincipalModel)
	err := repo.db.WithContext(ctx).
		Where("identifier = ?", identifier).
		First(principalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to find principal by identifier")
	}

	return toPrincipalDomain(principalM), nil
}

func (repo *principalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Principal, error) {
	principalM := new(model.PrincipalModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(principalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPrincipalNotFound
		}

		return nil, errors.Wrap(err, "failed to find principal by id")
	}

	return toPrincipalDomain(principalM), nil
}

func (repo *principalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	principalM := fromPrincipalDomain(principal)

	if err := repo.db.WithContext(ctx).Create(principalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("identifier already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required principal fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create principal")
	}

	principal.ID = principalM.ID
	principal.CreatedAt = principalM.CreatedAt
	principal.UpdatedAt = principalM.UpdatedAt

	return nil
}

func (repo *principalRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.PrincipalModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete principals by client")
	}

	return result.RowsAffected, nil
}

// toPrincipalDomain maps the persistence model back to a pure domain entity.
func toPrincipalDomain(m *model.PrincipalModel) *entity.Principal {
	return &entity.Principal{
		ID:           m.ID,
		Kind:         entity.PrincipalKind(m.Kind),
		Role:         entity.Role(m.Role),
		Identifier:   m.Identifier,
		PasswordHash: m.PasswordHash,
		ClientID:     m.ClientID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// fromPrincipalDomain maps the pure domain entity to a GORM persistence model.
func fromPrincipalDomain(p *entity.Principal) *model.PrincipalModel {
	return &model.PrincipalModel{
		ID:           p.ID,
		Kind:         p.Kind.String(),
		Role:         p.Role.String(),
		Identifier:   p.Identifier,
		PasswordHash: p.PasswordHash,
		ClientID:     p.ClientID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
