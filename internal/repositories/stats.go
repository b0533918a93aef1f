package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// StatsReadRepository produces the admin entity counts.
type StatsReadRepository struct {
	db *sqlx.DB
}

func NewStatsReadRepository(db *sqlx.DB) *StatsReadRepository {
	return &StatsReadRepository{db: db}
}

func (r *StatsReadRepository) Counts(ctx context.Context) (*models.StatsCounts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users) AS users,
			(SELECT COUNT(*) FROM registrations) AS registrations,
			(SELECT COUNT(*) FROM projects) AS projects,
			(SELECT COUNT(*) FROM attachments) AS attachments
	`

	var counts models.StatsCounts
	err := r.db.GetContext(ctx, &counts, query)

	logger.Log.Infow("stats query",
		"result", counts,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &counts, nil
}
