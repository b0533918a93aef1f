package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/middlewares"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/services"
)

// FileSaver defines the interface that the upload service must implement.
type FileSaver interface {
	SaveFile(ctx context.Context, data []byte, declaredFilename, uploadContext string, uid int64) (*models.AttachmentDB, int, error)
}

// UploadResponse represents a stored upload
// swagger:model UploadResponse
type UploadResponse struct {
	ID   int64  `json:"id"`
	URL  string `json:"url"`
	Key  string `json:"key"`
	Size int    `json:"size"`
}

// UploadErrorResponse represents an error response for uploads
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewUploadHandler returns an HTTP handler that accepts a multipart file
// upload and stores it as an unclaimed attachment. maxSize also bounds the
// multipart form memory.
// @Summary Upload a file
// @Description Accepts a multipart "file" field, validates size and MIME type against the allowlist and stores the file under the caller's folder for the given context.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param context query string true "Upload context" Enums(registration, project)
// @Param file formData file true "File to upload"
// @Success 201 {object} handlers.UploadResponse "Stored attachment"
// @Failure 400 {object} handlers.UploadErrorResponse "Bad context, missing file or unsupported type"
// @Failure 413 {object} handlers.UploadErrorResponse "File too large"
// @Router /upload/image [post]
func NewUploadHandler(svc FileSaver, maxSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		uploadContext := r.URL.Query().Get("context")

		// Extra byte lets the service distinguish at-limit from over-limit.
		r.Body = http.MaxBytesReader(w, r.Body, maxSize+1)
		if err := r.ParseMultipartForm(maxSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				json.NewEncoder(w).Encode(UploadErrorResponse{Error: "File is too large"})
				return
			}
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "invalid multipart form"})
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "file field is required"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			logger.Log.Errorw("failed to read uploaded file", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Internal server error"})
			return
		}

		att, size, err := svc.SaveFile(r.Context(), data, header.Filename, uploadContext, user.UID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidUploadContext):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{Error: "context must be registration or project"})
			case errors.Is(err, services.ErrFileTooLarge):
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				json.NewEncoder(w).Encode(UploadErrorResponse{Error: "File is too large"})
			case errors.Is(err, services.ErrUnsupportedFileType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Unsupported file type"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{
			ID:   att.ID,
			URL:  att.URL,
			Key:  att.Key,
			Size: size,
		})
	}
}
