package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "praxis/internal/delivery/context"
	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocumentUsecase serves canned documents keyed by storage path. Every
// other lookup is the uniform forbidden error, like the real gateway.
type fakeDocumentUsecase struct {
	files map[string]string
	doc   entity.Document
}

func (f *fakeDocumentUsecase) GetDocument(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Document, error) {
	doc := f.doc

	return &doc, nil
}

func (f *fakeDocumentUsecase) ListDocumentsByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Document, error) {
	doc := f.doc

	return []*entity.Document{&doc}, nil
}

func (f *fakeDocumentUsecase) UploadDocument(ctx context.Context, sess *entity.Session, input usecase.UploadDocumentInput) (*entity.Document, error) {
	content, err := io.ReadAll(input.Content)
	if err != nil {
		return nil, err
	}

	return &entity.Document{
		ID:          uuid.New(),
		ClientID:    input.ClientID,
		CaseID:      input.CaseID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		Size:        int64(len(content)),
	}, nil
}

func (f *fakeDocumentUsecase) FetchDocument(ctx context.Context, sess *entity.Session, storagePath string) (*usecase.DocumentStream, error) {
	content, ok := f.files[storagePath]
	if !ok {
		return nil, domainerrors.ErrForbidden
	}

	doc := f.doc

	return &usecase.DocumentStream{
		Document: &doc,
		Content:  io.NopCloser(strings.NewReader(content)),
	}, nil
}

func (f *fakeDocumentUsecase) DeleteDocument(ctx context.Context, sess *entity.Session, id uuid.UUID) error {
	return nil
}

func multipartUpload(t *testing.T, fields map[string]string, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func newDocumentHandler(uc usecase.DocumentUsecase) *DocumentHandler {
	return NewDocumentHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func fetchContext(t *testing.T, storagePath string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/documents/files/"+storagePath, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/documents/files/*")
	c.SetParamNames("*")
	c.SetParamValues(storagePath)

	clientID := uuid.New()
	deliverycontext.SetSession(c, &entity.Session{
		Token:    "test-token",
		Kind:     entity.KindClient,
		Role:     entity.RoleClient,
		ClientID: &clientID,
	})

	return c, rec
}

func TestDocumentHandler_Fetch_ServesStoredContentType(t *testing.T) {
	storagePath := uuid.New().String() + "/peticao.pdf"
	uc := &fakeDocumentUsecase{
		files: map[string]string{storagePath: "%PDF-1.7 conteudo"},
		doc: entity.Document{
			FileName: "peticao.pdf",
			// Deliberately not what sniffing the body would yield.
			ContentType: "application/pdf",
		},
	}
	h := newDocumentHandler(uc)

	c, rec := fetchContext(t, storagePath)
	require.NoError(t, h.Fetch(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), `filename="peticao.pdf"`)
	assert.Equal(t, "%PDF-1.7 conteudo", rec.Body.String())
}

func TestDocumentHandler_Fetch_BubblesUniformForbidden(t *testing.T) {
	uc := &fakeDocumentUsecase{files: map[string]string{}}
	h := newDocumentHandler(uc)

	for _, storagePath := range []string{
		"../../etc/passwd",
		"/etc/passwd",
		"desconhecido/arquivo.pdf",
	} {
		c, _ := fetchContext(t, storagePath)

		err := h.Fetch(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestDocumentHandler_Upload_Multipart(t *testing.T) {
	h := newDocumentHandler(&fakeDocumentUsecase{})
	clientID := uuid.New()

	body, contentType := multipartUpload(t, map[string]string{
		"clientId": clientID.String(),
	}, "procuracao.pdf", "conteudo do arquivo")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "procuracao.pdf")
}

func TestDocumentHandler_Upload_RejectsBadClientID(t *testing.T) {
	h := newDocumentHandler(&fakeDocumentUsecase{})

	body, contentType := multipartUpload(t, map[string]string{
		"clientId": "not-a-uuid",
	}, "procuracao.pdf", "conteudo")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Upload(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}
