package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov/evreg/internal/middlewares"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockFileSaver(ctrl)
	handler := NewUploadHandler(mockSvc, 1024)

	user := &models.UserDB{UID: 123456, Username: "john_doe"}
	content := []byte("\x89PNG\r\n\x1a\n file bytes")

	newRequest := func(target string, body *bytes.Buffer, contentType string, user *models.UserDB) *http.Request {
		r := httptest.NewRequest(http.MethodPost, target, body)
		r.Header.Set("Content-Type", contentType)
		if user != nil {
			r = r.WithContext(middlewares.SetUserToContext(r.Context(), user))
		}
		return r
	}

	t.Run("created", func(t *testing.T) {
		mockSvc.EXPECT().
			SaveFile(gomock.Any(), content, "photo.png", "project", int64(123456)).
			Return(&models.AttachmentDB{
				ID:  7,
				URL: "/static/123456_project/abc.png",
				Key: "abc.png",
			}, len(content), nil)

		body, contentType := multipartBody(t, "photo.png", content)
		w := httptest.NewRecorder()
		handler(w, newRequest("/api/v1/upload/image?context=project", body, contentType, user))

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp UploadResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "/static/123456_project/abc.png", resp.URL)
		assert.Equal(t, len(content), resp.Size)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		body, contentType := multipartBody(t, "photo.png", content)
		w := httptest.NewRecorder()
		handler(w, newRequest("/api/v1/upload/image?context=project", body, contentType, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid context", func(t *testing.T) {
		mockSvc.EXPECT().
			SaveFile(gomock.Any(), content, "photo.png", "avatar", int64(123456)).
			Return(nil, 0, services.ErrInvalidUploadContext)

		body, contentType := multipartBody(t, "photo.png", content)
		w := httptest.NewRecorder()
		handler(w, newRequest("/api/v1/upload/image?context=avatar", body, contentType, user))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("file too large", func(t *testing.T) {
		mockSvc.EXPECT().
			SaveFile(gomock.Any(), content, "photo.png", "project", int64(123456)).
			Return(nil, 0, services.ErrFileTooLarge)

		body, contentType := multipartBody(t, "photo.png", content)
		w := httptest.NewRecorder()
		handler(w, newRequest("/api/v1/upload/image?context=project", body, contentType, user))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("unsupported type", func(t *testing.T) {
		raw := []byte("plain text")
		mockSvc.EXPECT().
			SaveFile(gomock.Any(), raw, "notes.txt", "project", int64(123456)).
			Return(nil, 0, services.ErrUnsupportedFileType)

		body, contentType := multipartBody(t, "notes.txt", raw)
		w := httptest.NewRecorder()
		handler(w, newRequest("/api/v1/upload/image?context=project", body, contentType, user))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("context", "project"))
		require.NoError(t, mw.Close())

		w := httptest.NewRecorder()
		handler(w, newRequest("/api/v1/upload/image?context=project", &buf, mw.FormDataContentType(), user))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("body over the limit", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), 4096)
		body, contentType := multipartBody(t, "big.png", big)
		w := httptest.NewRecorder()
		handler(w, newRequest("/api/v1/upload/image?context=project", body, contentType, user))

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
