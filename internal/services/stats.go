package services

import (
	"context"

	"github.com/mstepanov/evreg/internal/models"
)

// StatsReader produces entity counts for the admin dashboard.
type StatsReader interface {
	Counts(ctx context.Context) (*models.StatsCounts, error)
}

// StatsService reports entity counts.
type StatsService struct {
	reader StatsReader
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(reader StatsReader) *StatsService {
	return &StatsService{reader: reader}
}

func (svc *StatsService) Counts(ctx context.Context) (*models.StatsCounts, error) {
	return svc.reader.Counts(ctx)
}
