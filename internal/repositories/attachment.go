package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

const attachmentColumns = `id, uploaded_by_uid, project_id, registration_id, url, key, original_filename, mime_type, created_at`

// AttachmentRepository handles attachment rows and the one-time claim protocol.
type AttachmentRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAttachmentRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AttachmentRepository {
	return &AttachmentRepository{db: db, txGetter: txGetter}
}

func (r *AttachmentRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts an unclaimed attachment and returns the row.
func (r *AttachmentRepository) Create(ctx context.Context, uploadedByUID int64, url, key, originalFilename, mimeType string) (*models.AttachmentDB, error) {
	const query = `
		INSERT INTO attachments (uploaded_by_uid, project_id, registration_id, url, key, original_filename, mime_type)
		VALUES ($1, NULL, NULL, $2, $3, $4, $5)
		RETURNING ` + attachmentColumns + `
	`

	var att models.AttachmentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &att, query, uploadedByUID, url, key, originalFilename, mimeType)

	logger.Log.Infow("attachment insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uploadedByUID, key, mimeType},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id int64) (*models.AttachmentDB, error) {
	const query = `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE id = $1
	`

	var att models.AttachmentDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &att, query, id)

	logger.Log.Infow("attachment query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// ClaimForProject links an unclaimed attachment to a project. The WHERE clause
// re-checks uploader and unclaimed state so that of two concurrent claimers
// only one can see a row affected; zero rows means the claim lost.
func (r *AttachmentRepository) ClaimForProject(ctx context.Context, id, uploaderUID, projectID int64) (int64, error) {
	const query = `
		UPDATE attachments
		SET project_id = $3
		WHERE id = $1
		  AND uploaded_by_uid = $2
		  AND project_id IS NULL
		  AND registration_id IS NULL
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, uploaderUID, projectID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("attachment claim",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, uploaderUID, projectID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// ClaimForRegistration links an unclaimed attachment to a registration.
// Same conditional-update guard as ClaimForProject.
func (r *AttachmentRepository) ClaimForRegistration(ctx context.Context, id, uploaderUID, registrationID int64) (int64, error) {
	const query = `
		UPDATE attachments
		SET registration_id = $3
		WHERE id = $1
		  AND uploaded_by_uid = $2
		  AND project_id IS NULL
		  AND registration_id IS NULL
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, uploaderUID, registrationID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("attachment claim",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, uploaderUID, registrationID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

func (r *AttachmentRepository) ListByProjectID(ctx context.Context, projectID int64) ([]models.AttachmentDB, error) {
	const query = `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE project_id = $1
		ORDER BY id
	`

	atts := []models.AttachmentDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &atts, query, projectID)

	logger.Log.Infow("attachment query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"result", len(atts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return atts, nil
}

func (r *AttachmentRepository) ListByRegistrationID(ctx context.Context, registrationID int64) ([]models.AttachmentDB, error) {
	const query = `
		SELECT ` + attachmentColumns + `
		FROM attachments
		WHERE registration_id = $1
		ORDER BY id
	`

	atts := []models.AttachmentDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &atts, query, registrationID)

	logger.Log.Infow("attachment query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{registrationID},
		"result", len(atts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return atts, nil
}
