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

const userColumns = `uid, username, email, password_hash, avatar_url, bio, phone, is_admin, created_at, updated_at`

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByUID(ctx context.Context, uid int64) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE uid = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, uid)

	logger.Log.Infow("user query",
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
	return &user, nil
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail returns the first user matching either the username or
// the email; nil arguments are skipped. Used by login and duplicate detection.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUID reports whether a uid is already allocated.
func (r *UserReadRepository) ExistsByUID(ctx context.Context, uid int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE uid = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, uid)

	logger.Log.Infow("user query",
		"query", query,
		"args", []any{uid},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// List returns a page of users ordered by creation time descending,
// together with the total user count.
func (r *UserReadRepository) List(ctx context.Context, page, pageSize int) ([]models.UserDB, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM users`
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, (page-1)*pageSize, pageSize)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{page, pageSize},
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new user with a pre-allocated uid and returns the row.
func (r *UserWriteRepository) Create(ctx context.Context, uid int64, username, email, passwordHash string, now time.Time) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (uid, username, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, $5)
		RETURNING ` + userColumns + `
	`
	args := []any{uid, username, email, passwordHash, now}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid, username, email},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the password hash of a user.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, uid int64, passwordHash string, now time.Time) error {
	const query = `
		UPDATE users
		SET password_hash = $2, updated_at = $3
		WHERE uid = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, uid, passwordHash, now)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateProfile writes the mutable profile fields of a user and returns the row.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, uid int64, username string, bio, phone, avatarURL *string, now time.Time) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username = $2, bio = $3, phone = $4, avatar_url = $5, updated_at = $6
		WHERE uid = $1
		RETURNING ` + userColumns + `
	`
	args := []any{uid, username, bio, phone, avatarURL, now}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow("user update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid, username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}
