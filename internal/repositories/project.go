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

const projectColumns = `project_id, uid, title, description, repo_url, demo_url, created_at, updated_at`

// ProjectReadRepository handles project read operations.
type ProjectReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectReadRepository {
	return &ProjectReadRepository{db: db, txGetter: txGetter}
}

func (r *ProjectReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *ProjectReadRepository) GetByID(ctx context.Context, projectID int64) (*models.ProjectDB, error) {
	const query = `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE project_id = $1
	`

	var p models.ProjectDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &p, query, projectID)

	logger.Log.Infow("project query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByUID returns all projects of a user, newest first.
func (r *ProjectReadRepository) GetByUID(ctx context.Context, uid int64) ([]models.ProjectDB, error) {
	const query = `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE uid = $1
		ORDER BY created_at DESC
	`

	projects := []models.ProjectDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &projects, query, uid)

	logger.Log.Infow("project query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid},
		"result", len(projects),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return projects, nil
}

// List returns a page of all projects ordered newest-first plus the total count.
func (r *ProjectReadRepository) List(ctx context.Context, page, pageSize int) ([]models.ProjectDB, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM projects`
	const query = `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`

	var total int64
	if err := sqlx.GetContext(ctx, r.executor(ctx), &total, countQuery); err != nil {
		return nil, 0, err
	}

	items := []models.ProjectDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &items, query, (page-1)*pageSize, pageSize)

	logger.Log.Infow("project list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{page, pageSize},
		"total", total,
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ProjectWriteRepository handles project write operations.
type ProjectWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProjectWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a project and returns the row.
func (r *ProjectWriteRepository) Create(ctx context.Context, uid int64, title, description string, repoURL, demoURL *string) (*models.ProjectDB, error) {
	const query = `
		INSERT INTO projects (uid, title, description, repo_url, demo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + projectColumns + `
	`

	var p models.ProjectDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &p, query, uid, title, description, repoURL, demoURL)

	logger.Log.Infow("project insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{uid, title},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update overwrites the given fields, refreshes updated_at and returns the
// updated row, or nil if the project does not exist. Nil fields keep their
// current value.
func (r *ProjectWriteRepository) Update(ctx context.Context, projectID int64, title, description, repoURL, demoURL *string) (*models.ProjectDB, error) {
	const query = `
		UPDATE projects
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    repo_url = COALESCE($4, repo_url),
		    demo_url = COALESCE($5, demo_url),
		    updated_at = NOW()
		WHERE project_id = $1
		RETURNING ` + projectColumns + `
	`

	var p models.ProjectDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &p, query, projectID, title, description, repoURL, demoURL)

	logger.Log.Infow("project update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a project; claimed attachments cascade.
// Returns the number of rows deleted.
func (r *ProjectWriteRepository) Delete(ctx context.Context, projectID int64) (int64, error) {
	const query = `
		DELETE FROM projects
		WHERE project_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, projectID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("project delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
