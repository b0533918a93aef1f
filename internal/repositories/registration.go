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

const registrationColumns = `registration_id, uid, note, status, created_at`

// RegistrationReadRepository handles registration read operations.
type RegistrationReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRegistrationReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RegistrationReadRepository {
	return &RegistrationReadRepository{db: db, txGetter: txGetter}
}

func (r *RegistrationReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByUID returns the user's registration, or nil if none exists.
func (r *RegistrationReadRepository) GetByUID(ctx context.Context, uid int64) (*models.RegistrationDB, error) {
	const query = `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE uid = $1
	`

	var reg models.RegistrationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &reg, query, uid)

	logger.Log.Infow("registration query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationReadRepository) GetByID(ctx context.Context, registrationID int64) (*models.RegistrationDB, error) {
	const query = `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE registration_id = $1
	`

	var reg models.RegistrationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &reg, query, registrationID)

	logger.Log.Infow("registration query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{registrationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// List returns a page of registrations ordered newest-first plus the total
// count. The total ignores pagination but respects the status filter.
func (r *RegistrationReadRepository) List(ctx context.Context, status *string, page, pageSize int) ([]models.RegistrationDB, int64, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM registrations
		WHERE ($1::VARCHAR IS NULL OR status = $1)
	`
	const query = `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	var total int64
	if err := sqlx.GetContext(ctx, r.executor(ctx), &total, countQuery, status); err != nil {
		return nil, 0, err
	}

	items := []models.RegistrationDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &items, query, status, (page-1)*pageSize, pageSize)

	logger.Log.Infow("registration list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status, page, pageSize},
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// RegistrationWriteRepository handles registration write operations.
type RegistrationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRegistrationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RegistrationWriteRepository {
	return &RegistrationWriteRepository{db: db, txGetter: txGetter}
}

func (r *RegistrationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a registration in pending status and returns the row.
// The UNIQUE (uid) constraint is the race guard for one-registration-per-user;
// callers map the violation to a conflict error.
func (r *RegistrationWriteRepository) Create(ctx context.Context, uid int64, note *string) (*models.RegistrationDB, error) {
	const query = `
		INSERT INTO registrations (uid, note, status)
		VALUES ($1, $2, 'pending')
		RETURNING ` + registrationColumns + `
	`

	var reg models.RegistrationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &reg, query, uid, note)

	logger.Log.Infow("registration insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// UpdateStatus sets the audit status and returns the updated row,
// or nil if the registration does not exist.
func (r *RegistrationWriteRepository) UpdateStatus(ctx context.Context, registrationID int64, status string) (*models.RegistrationDB, error) {
	const query = `
		UPDATE registrations
		SET status = $2
		WHERE registration_id = $1
		RETURNING ` + registrationColumns + `
	`

	var reg models.RegistrationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &reg, query, registrationID, status)

	logger.Log.Infow("registration update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{registrationID, status},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// UpdateNote replaces the note and returns the updated row,
// or nil if the registration does not exist.
func (r *RegistrationWriteRepository) UpdateNote(ctx context.Context, registrationID int64, note string) (*models.RegistrationDB, error) {
	const query = `
		UPDATE registrations
		SET note = $2
		WHERE registration_id = $1
		RETURNING ` + registrationColumns + `
	`

	var reg models.RegistrationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &reg, query, registrationID, note)

	logger.Log.Infow("registration update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{registrationID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Delete removes a registration; owned attachments cascade.
// Returns the number of rows deleted.
func (r *RegistrationWriteRepository) Delete(ctx context.Context, registrationID int64) (int64, error) {
	const query = `
		DELETE FROM registrations
		WHERE registration_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, registrationID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("registration delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{registrationID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
