package usecase

import (
	"context"
	"io"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadDocumentInput defines the data for a document upload. Content is
// streamed to the storage root; the row is only committed after the bytes
// are on disk.
type UploadDocumentInput struct {
	ClientID    uuid.UUID
	CaseID      *uuid.UUID
	FileName    string
	ContentType string
	Content     io.Reader
}

// DocumentStream is an open document ready to serve. The caller owns Content
// and must close it.
type DocumentStream struct {
	Document *entity.Document
	Content  io.ReadCloser
}

// DocumentUsecase defines document operations, including the secure file
// gateway. Fetch treats the requested path as hostile input: it must pass
// the storage boundary's gates and resolve to a record the session may read
// before a single byte is served. Every rejection is the same Forbidden.
type DocumentUsecase interface {
	GetDocument(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Document, error)
	ListDocumentsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Document, error)
	UploadDocument(ctx context.Context, sess *entity.Session, input UploadDocumentInput) (*entity.Document, error)

	// FetchDocument opens the file recorded at the root-relative path and
	// returns it with the MIME type stored at upload time.
	FetchDocument(ctx context.Context, sess *entity.Session, storagePath string) (*DocumentStream, error)

	// DeleteDocument removes the row, then the file. A file that is already
	// gone is not an error.
	DeleteDocument(ctx context.Context, sess *entity.Session, id uuid.UUID) error
}
