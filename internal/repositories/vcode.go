package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// VerificationCodeRepository stores the single live code per (email, type).
type VerificationCodeRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewVerificationCodeRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db, txGetter: txGetter}
}

func (r *VerificationCodeRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *VerificationCodeRepository) Get(ctx context.Context, email, codeType string) (*models.VerificationCodeDB, error) {
	const query = `
		SELECT id, email, type, code, expires_at, last_send_at
		FROM verification_codes
		WHERE email = $1 AND type = $2
	`

	var vc models.VerificationCodeDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &vc, query, email, codeType)

	logger.Log.Infow("verification code query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, codeType},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vc, nil
}

// Upsert creates the code row for (email, type) or overwrites the existing one.
// The UNIQUE (email, type) constraint keeps concurrent senders on a single row.
func (r *VerificationCodeRepository) Upsert(ctx context.Context, email, codeType, code string, expiresAt, lastSendAt time.Time) error {
	const query = `
		INSERT INTO verification_codes (email, type, code, expires_at, last_send_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email, type) DO UPDATE
		SET code = EXCLUDED.code,
		    expires_at = EXCLUDED.expires_at,
		    last_send_at = EXCLUDED.last_send_at
	`
	args := []any{email, codeType, code, expiresAt, lastSendAt}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("verification code upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, codeType},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the code row for (email, type). Runs inside the caller's
// transaction so that consumption commits together with the dependent mutation.
func (r *VerificationCodeRepository) Delete(ctx context.Context, email, codeType string) error {
	const query = `
		DELETE FROM verification_codes
		WHERE email = $1 AND type = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, email, codeType)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("verification code delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, codeType},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
