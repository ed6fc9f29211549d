package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"praxis/internal/delivery/http/response"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DocumentHandler holds dependencies for document handlers, including the
// secure file gateway.
type DocumentHandler struct {
	uc     usecase.DocumentUsecase
	logger *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler, injected by Fx.
func NewDocumentHandler(uc usecase.DocumentUsecase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns a document's metadata, never its bytes.
func (h *DocumentHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	doc, err := h.uc.GetDocument(c.Request().Context(), session(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, doc, "")
}

// ListByClient returns the documents owned by a client.
func (h *DocumentHandler) ListByClient(c echo.Context) error {
	clientID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	docs, err := h.uc.ListDocumentsByClient(c.Request().Context(), session(c), clientID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, docs, "")
}

// Upload accepts a multipart upload. The declared content type and file name
// are recorded as-is; the storage path is generated server-side and never
// taken from the request.
func (h *DocumentHandler) Upload(c echo.Context) error {
	clientID, err := uuid.Parse(c.FormValue("clientId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("invalid clientId"))
	}

	var caseID *uuid.UUID
	if raw := c.FormValue("caseId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidation.WithDetails("invalid caseId"))
		}
		caseID = &parsed
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer src.Close()

	input := usecase.UploadDocumentInput{
		ClientID:    clientID,
		CaseID:      caseID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Content:     src,
	}

	doc, err := h.uc.UploadDocument(c.Request().Context(), session(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, doc, "Document uploaded successfully")
}

// Fetch streams a stored file by its root-relative path. The path is hostile
// input: the use case gates it before a single byte is read, and every
// rejection looks the same.
func (h *DocumentHandler) Fetch(c echo.Context) error {
	storagePath := c.Param("*")

	stream, err := h.uc.FetchDocument(c.Request().Context(), session(c), storagePath)
	if err != nil {
		return errors.WithStack(err)
	}
	defer stream.Content.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", stream.Document.FileName))

	// Serve the content type recorded at upload time, never a re-sniffed one.
	return c.Stream(http.StatusOK, stream.Document.ContentType, stream.Content)
}

// Delete removes the document row, then its file.
func (h *DocumentHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteDocument(c.Request().Context(), session(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Document deleted successfully")
}
