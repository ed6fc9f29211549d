package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	deliverycontext "praxis/internal/delivery/context"
	"praxis/internal/domain/authz"
	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/domain/repository"
	"praxis/internal/infra/metrics"
	"praxis/internal/infra/storage"
	"praxis/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultContentType = "application/octet-stream"

// documentService implements the DocumentUsecase interface. It is the secure
// file gateway: nothing reaches the filesystem except through the storage
// boundary, and every denial looks the same from outside.
type documentService struct {
	docRepo     repository.DocumentRepository
	storageRoot *storage.Root
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// DocumentServiceParams holds dependencies for documentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	DocRepo     repository.DocumentRepository
	StorageRoot *storage.Root
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		docRepo:     params.DocRepo,
		storageRoot: params.StorageRoot,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *documentService) GetDocument(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Document, error) {
	doc, err := srv.docRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			// Id-based reads report absence like every other resource; only
			// the path-based gateway collapses absence into Forbidden.
			return nil, domainerrors.ErrNotFound
		}

		return nil, err
	}
	if err := guardOwned(sess, authz.ResourceDocument, authz.ActionRead, doc.ClientID); err != nil {
		return nil, err
	}

	return doc, nil
}

func (srv *documentService) ListDocumentsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Document, error) {
	if err := guardOwned(sess, authz.ResourceDocument, authz.ActionRead, clientID); err != nil {
		return nil, err
	}

	return srv.docRepo.ListByClient(ctx, clientID)
}

// UploadDocument streams the content below the storage root, then records the
// row. The stored path is generated server-side; client-supplied names only
// survive as the download file name.
func (srv *documentService) UploadDocument(ctx context.Context, sess *entity.Session, input usecase.UploadDocumentInput) (*entity.Document, error) {
	if err := guardOwned(sess, authz.ResourceDocument, authz.ActionCreate, input.ClientID); err != nil {
		return nil, err
	}

	fileName := sanitizeFileName(input.FileName)
	if fileName == "" {
		return nil, domainerrors.ErrValidation.WithDetails("file name is required")
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	storagePath := fmt.Sprintf("%s/%s_%s", input.ClientID, uuid.New(), fileName)

	size, err := srv.storageRoot.Save(storagePath, input.Content)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store document content")
	}

	doc := &entity.Document{
		ClientID:    input.ClientID,
		CaseID:      input.CaseID,
		FileName:    fileName,
		StoragePath: storagePath,
		ContentType: contentType,
		Size:        size,
	}
	if err := srv.docRepo.Create(ctx, doc); err != nil {
		// The row never existed, so the bytes must not either.
		if rmErr := srv.storageRoot.Remove(storagePath); rmErr != nil {
			srv.log(ctx).Warn("failed to remove orphaned upload",
				slog.String("path", storagePath),
				slog.String("error", rmErr.Error()),
			)
		}

		return nil, err
	}

	return doc, nil
}

// FetchDocument serves a stored file by its root-relative path. The path is
// hostile input: it must pass the storage gates, match a recorded document
// and belong to a client the session may read. All three failures collapse
// into the same Forbidden, so probing reveals neither layout nor existence.
func (srv *documentService) FetchDocument(ctx context.Context, sess *entity.Session, storagePath string) (*usecase.DocumentStream, error) {
	if sess == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if _, err := srv.storageRoot.Resolve(storagePath); err != nil {
		srv.metrics.PathRejection()
		srv.log(ctx).Warn("document path rejected",
			slog.String("path", storagePath),
			slog.String("principal_id", sess.PrincipalID.String()),
		)

		return nil, domainerrors.ErrForbidden
	}

	doc, err := srv.docRepo.FindByStoragePath(ctx, storagePath)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, domainerrors.ErrForbidden
		}

		return nil, err
	}

	if err := guardOwned(sess, authz.ResourceDocument, authz.ActionRead, doc.ClientID); err != nil {
		return nil, domainerrors.ErrForbidden
	}

	content, err := srv.storageRoot.Open(doc.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrPathRejected) {
			return nil, domainerrors.ErrForbidden
		}

		return nil, errors.Wrap(err, "failed to open stored document")
	}

	return &usecase.DocumentStream{Document: doc, Content: content}, nil
}

func (srv *documentService) DeleteDocument(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	doc, err := srv.docRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return domainerrors.ErrNotFound
		}

		return err
	}
	if err := guardOwned(sess, authz.ResourceDocument, authz.ActionDelete, doc.ClientID); err != nil {
		return err
	}

	if err := srv.docRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := srv.storageRoot.Remove(doc.StoragePath); err != nil {
		srv.log(ctx).Warn("failed to remove document file",
			slog.String("path", doc.StoragePath),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// sanitizeFileName strips any directory component from a client-supplied
// name. Only the final path element survives.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	if name == "." || name == "/" || name == ".." {
		return ""
	}

	return name
}
