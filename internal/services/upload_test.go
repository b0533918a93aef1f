package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHead = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestDetectMime(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		head     []byte
		want     string
	}{
		{name: "extension wins", filename: "photo.png", head: []byte("garbage"), want: "image/png"},
		{name: "jpeg extension", filename: "photo.jpg", head: nil, want: "image/jpeg"},
		{name: "sniffed png without extension", filename: "upload", head: pngHead, want: "image/png"},
		{name: "pdf magic without extension", filename: "doc", head: []byte("%PDF-1.7 rest"), want: "application/pdf"},
		{name: "unknown falls back to octet-stream", filename: "blob", head: []byte{0x00, 0x01, 0x02}, want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectMime(tt.filename, tt.head))
		})
	}
}

func TestUploadService_SaveFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockAttachmentWriter(ctrl)

	dir := t.TempDir()
	svc := NewUploadService(mockWriter, UploadConfig{
		Dir:     dir,
		MaxSize: 1024,
	})

	t.Run("invalid context", func(t *testing.T) {
		_, _, err := svc.SaveFile(context.Background(), pngHead, "a.png", "avatar", 123456)
		assert.ErrorIs(t, err, ErrInvalidUploadContext)
	})

	t.Run("too large", func(t *testing.T) {
		_, _, err := svc.SaveFile(context.Background(), bytes.Repeat([]byte{1}, 2048), "a.png", models.UploadContextProject, 123456)
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, _, err := svc.SaveFile(context.Background(), []byte("plain text"), "notes.txt", models.UploadContextProject, 123456)
		assert.ErrorIs(t, err, ErrUnsupportedFileType)
	})

	t.Run("success", func(t *testing.T) {
		mockWriter.EXPECT().
			Create(gomock.Any(), int64(123456), gomock.Any(), gomock.Any(), "a.png", "image/png").
			DoAndReturn(func(_ context.Context, uid int64, url, key, filename, mimeType string) (*models.AttachmentDB, error) {
				assert.Equal(t, "/static/123456_project/"+key, url)
				return &models.AttachmentDB{ID: 7, UploadedByUID: uid, URL: url, Key: key, OriginalFilename: filename, MimeType: mimeType}, nil
			})

		att, size, err := svc.SaveFile(context.Background(), pngHead, "a.png", models.UploadContextProject, 123456)
		require.NoError(t, err)
		assert.Equal(t, int64(7), att.ID)
		assert.Equal(t, len(pngHead), size)

		written, err := os.ReadFile(filepath.Join(dir, "123456_project", att.Key))
		require.NoError(t, err)
		assert.Equal(t, pngHead, written)
	})
}

func TestUploadService_PublicBaseURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockAttachmentWriter(ctrl)
	svc := NewUploadService(mockWriter, UploadConfig{
		Dir:           t.TempDir(),
		PublicBaseURL: "https://cdn.example.com/files/",
		MaxSize:       1024,
	})

	mockWriter.EXPECT().
		Create(gomock.Any(), int64(555555), gomock.Any(), gomock.Any(), "a.png", "image/png").
		DoAndReturn(func(_ context.Context, uid int64, url, key, filename, mimeType string) (*models.AttachmentDB, error) {
			assert.Equal(t, "https://cdn.example.com/files/555555_registration/"+key, url)
			return &models.AttachmentDB{ID: 1, UploadedByUID: uid, URL: url, Key: key}, nil
		})

	_, _, err := svc.SaveFile(context.Background(), pngHead, "a.png", models.UploadContextRegistration, 555555)
	assert.NoError(t, err)
}
