package models

import "time"

// Upload contexts, used to derive the per-user storage folder.
const (
	UploadContextRegistration = "registration"
	UploadContextProject      = "project"
)

// AttachmentDB represents an uploaded file's metadata.
// An attachment starts unclaimed (both parent references NULL) and is
// claimed by exactly one project or one registration, only by its uploader.
type AttachmentDB struct {
	ID               int64     `json:"id" db:"id"`
	UploadedByUID    int64     `json:"uploaded_by_uid" db:"uploaded_by_uid"`
	ProjectID        *int64    `json:"project_id" db:"project_id"`
	RegistrationID   *int64    `json:"registration_id" db:"registration_id"`
	URL              string    `json:"url" db:"url"`
	Key              string    `json:"key" db:"key"`
	OriginalFilename string    `json:"original_filename" db:"original_filename"`
	MimeType         string    `json:"mime_type" db:"mime_type"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
