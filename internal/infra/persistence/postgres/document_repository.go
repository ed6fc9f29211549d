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

// documentRepository implements the domain.DocumentRepository interface using GORM.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	docM := new(model.DocumentModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(docM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return toDocumentDomain(docM), nil
}

func (repo *documentRepository) FindByStoragePath(ctx context.Context, storagePath string) (*entity.Document, error) {
	docM := new(model.DocumentModel)
	err := repo.db.WithContext(ctx).
		Where("storage_path = ?", storagePath).
		First(docM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by storage path")
	}

	return toDocumentDomain(docM), nil
}

func (repo *documentRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Document, error) {
	var docMs []model.DocumentModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("uploaded_at DESC").
		Find(&docMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents by client")
	}

	docs := make([]*entity.Document, 0, len(docMs))
	for i := range docMs {
		docs = append(docs, toDocumentDomain(&docMs[i]))
	}

	return docs, nil
}

func (repo *documentRepository) Create(ctx context.Context, doc *entity.Document) error {
	docM := fromDocumentDomain(doc)

	if err := repo.db.WithContext(ctx).Create(docM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("storage path already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrClientNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	doc.ID = docM.ID
	doc.UploadedAt = docM.UploadedAt

	return nil
}

func (repo *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DocumentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

func (repo *documentRepository) DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&model.DocumentModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete documents by client")
	}

	return result.RowsAffected, nil
}

func toDocumentDomain(m *model.DocumentModel) *entity.Document {
	return &entity.Document{
		ID:          m.ID,
		ClientID:    m.ClientID,
		CaseID:      m.CaseID,
		FileName:    m.FileName,
		StoragePath: m.StoragePath,
		ContentType: m.ContentType,
		Size:        m.Size,
		UploadedAt:  m.UploadedAt,
	}
}

func fromDocumentDomain(d *entity.Document) *model.DocumentModel {
	return &model.DocumentModel{
		ID:          d.ID,
		ClientID:    d.ClientID,
		CaseID:      d.CaseID,
		FileName:    d.FileName,
		StoragePath: d.StoragePath,
		ContentType: d.ContentType,
		Size:        d.Size,
		UploadedAt:  d.UploadedAt,
	}
}
