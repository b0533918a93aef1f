package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Domain errors raised by the workflow services. Handlers translate them into
// HTTP status codes; everything else surfaces as a generic internal error.
var (
	// Conflict
	ErrEmailAlreadyRegistered = errors.New("email is already registered")
	ErrUserAlreadyExists      = errors.New("username or email already exists")
	ErrUsernameTaken          = errors.New("username is already taken")
	ErrRegistrationExists     = errors.New("registration already submitted")
	ErrAttachmentClaimed      = errors.New("attachment is already in use")

	// Rate limited
	ErrCodeRequestTooSoon = errors.New("verification code requested too soon")

	// Auth
	ErrInvalidVerificationCode = errors.New("verification code is invalid or expired")
	ErrInvalidCredentials      = errors.New("invalid username, email or password")
	ErrLoginRequired           = errors.New("username or email is required")

	// Not found
	ErrUserNotFound         = errors.New("user not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrAttachmentNotFound   = errors.New("attachment not found")

	// Forbidden
	ErrAttachmentForbidden = errors.New("attachment belongs to another user")

	// Validation
	ErrInvalidStatus        = errors.New("invalid registration status")
	ErrInvalidUploadContext = errors.New("invalid upload context")
	ErrFileTooLarge         = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
)

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation. Storage-level constraints are the authoritative race guard for
// the pre-checked invariants; the violation maps back to the conflict error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
