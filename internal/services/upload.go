package services

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// sniffLimit bounds how much of the file content is used for MIME detection.
const sniffLimit = 4096

var pdfMagic = []byte("%PDF-")

// allowedMimes is the upload allowlist.
var allowedMimes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// AttachmentWriter persists new unclaimed attachment rows.
type AttachmentWriter interface {
	Create(ctx context.Context, uploadedByUID int64, url, key, originalFilename, mimeType string) (*models.AttachmentDB, error)
}

// UploadConfig carries the tunables of the upload gatekeeper.
type UploadConfig struct {
	Dir           string // Root directory for uploaded files
	PublicBaseURL string // Absolute URL prefix; empty means relative /static paths
	MaxSize       int64  // Maximum upload size in bytes
}

// UploadService validates, classifies and persists uploaded files before they
// become claimable attachments.
type UploadService struct {
	attachments AttachmentWriter
	cfg         UploadConfig
}

// NewUploadService creates a new UploadService instance.
func NewUploadService(attachments AttachmentWriter, cfg UploadConfig) *UploadService {
	return &UploadService{attachments: attachments, cfg: cfg}
}

// detectMime classifies file content: filename extension first, then content
// sniffing of the leading bytes, then a raw PDF magic-number check, defaulting
// to the generic binary type.
func detectMime(filename string, head []byte) string {
	if ext := filepath.Ext(filename); ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
				return mediaType
			}
		}
	}

	if detected := mimetype.Detect(head).String(); detected != "" && detected != "application/octet-stream" {
		if mediaType, _, err := mime.ParseMediaType(detected); err == nil {
			return mediaType
		}
	}

	if bytes.HasPrefix(head, pdfMagic) {
		return "application/pdf"
	}

	return "application/octet-stream"
}

func (svc *UploadService) buildPublicURL(folder, key string) string {
	if base := strings.TrimRight(svc.cfg.PublicBaseURL, "/"); base != "" {
		return base + "/" + folder + "/" + key
	}
	return "/static/" + folder + "/" + key
}

// SaveFile persists the uploaded bytes under a per-user, per-context folder
// and inserts an unclaimed attachment row. The row insert joins the request
// transaction, so a failed byte write rolls the metadata back; a crash after
// the write but before commit leaves only an orphan file on disk.
func (svc *UploadService) SaveFile(ctx context.Context, data []byte, declaredFilename, uploadContext string, uid int64) (*models.AttachmentDB, int, error) {
	if uploadContext != models.UploadContextRegistration && uploadContext != models.UploadContextProject {
		return nil, 0, ErrInvalidUploadContext
	}

	size := len(data)
	if int64(size) > svc.cfg.MaxSize {
		return nil, 0, ErrFileTooLarge
	}

	if declaredFilename == "" {
		declaredFilename = "upload.bin"
	}

	head := data
	if len(head) > sniffLimit {
		head = head[:sniffLimit]
	}

	mimeType := detectMime(declaredFilename, head)
	ext, ok := allowedMimes[mimeType]
	if !ok {
		return nil, 0, ErrUnsupportedFileType
	}

	folder := fmt.Sprintf("%d_%s", uid, uploadContext)
	key := uuid.New().String() + ext
	url := svc.buildPublicURL(folder, key)

	att, err := svc.attachments.Create(ctx, uid, url, key, declaredFilename, mimeType)
	if err != nil {
		logger.Log.Errorw("failed to insert attachment", "uid", uid, "err", err)
		return nil, 0, err
	}

	dir := filepath.Join(svc.cfg.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, 0, err
	}
	if err := os.WriteFile(filepath.Join(dir, key), data, 0o644); err != nil {
		logger.Log.Errorw("failed to write uploaded file", "path", filepath.Join(dir, key), "err", err)
		return nil, 0, err
	}

	return att, size, nil
}
