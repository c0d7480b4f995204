package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintbox/internal/application/complaint/usecases"
	"complaintbox/internal/domain/complaint"
	"complaintbox/internal/shared/logger"
)

type stubRepository struct {
	created *complaint.Complaint
}

func (s *stubRepository) List(ctx context.Context) ([]*complaint.Complaint, error) { return nil, nil }
func (s *stubRepository) FindByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	return nil, nil
}
func (s *stubRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	s.created = c
	return c.SetID(1)
}
func (s *stubRepository) SetReadState(ctx context.Context, id uint, read bool) error { return nil }
func (s *stubRepository) Delete(ctx context.Context, id uint) error                  { return nil }

type stubAttachments struct {
	attached string
}

func (s *stubAttachments) Attach(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	s.attached = filename
	return "http://localhost:8080/uploads/key.png", nil
}

func (s *stubAttachments) Detach(ctx context.Context, attachmentURL *string) {}

func newComplaintRouter(repo *stubRepository, attachments *stubAttachments) *gin.Engine {
	uc := usecases.NewSubmitComplaintUseCase(repo, attachments, nil, logger.NewLogger())
	handler := NewComplaintHandler(uc, logger.NewLogger())

	router := gin.New()
	router.POST("/api/complaints", handler.Submit)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestSubmit_Success(t *testing.T) {
	repo := &stubRepository{}
	router := newComplaintRouter(repo, &stubAttachments{})

	body, contentType := multipartBody(t, map[string]string{
		"name":      "Alice",
		"email":     "alice@example.com",
		"subject":   "Broken elevator",
		"complaint": "Stuck for a week.",
	}, "", "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/complaints", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Broken elevator", repo.created.Subject())
	assert.True(t, repo.created.IsNew())
}

func TestSubmit_WithAttachment(t *testing.T) {
	repo := &stubRepository{}
	attachments := &stubAttachments{}
	router := newComplaintRouter(repo, attachments)

	body, contentType := multipartBody(t, map[string]string{
		"subject":   "Evidence attached",
		"complaint": "See the photo.",
	}, "attachment", "photo.png", []byte("image-bytes"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/complaints", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "photo.png", attachments.attached)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.HasAttachment())
}

func TestSubmit_MissingSubject(t *testing.T) {
	router := newComplaintRouter(&stubRepository{}, &stubAttachments{})

	body, contentType := multipartBody(t, map[string]string{
		"complaint": "No subject given.",
	}, "", "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/complaints", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, strings.ToLower(w.Body.String()), "subject")
}
