package repository

import (
	"context"
	"errors"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDocumentNotFound is returned when a document lookup misses.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository persists document metadata. The bytes themselves live
// below the storage root; only the relative StoragePath is recorded here.
type DocumentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)

	// FindByStoragePath retrieves the document recorded at the given
	// root-relative path. The gateway uses it to recover the stored MIME
	// type and owner of a requested file.
	FindByStoragePath(ctx context.Context, storagePath string) (*entity.Document, error)

	ListByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Document, error)
	Create(ctx context.Context, doc *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByClient removes every document row owned by the client. The
	// caller collects the storage paths beforehand; files on disk are only
	// touched after the surrounding transaction commits.
	DeleteByClient(ctx context.Context, clientID uuid.UUID) (int64, error)
}
