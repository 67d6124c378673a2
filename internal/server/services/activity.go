package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/lifetracker/internal/server/config"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
	"github.com/dmitrijs2005/lifetracker/internal/server/repositories/repomanager"
)

// ActivityStats is the summary payload returned by the activity endpoint.
type ActivityStats struct {
	PerDay      []*models.DailyStat
	PerCategory []*models.CategoryStat
}

// ActivityService computes on-demand calorie summaries for one user.
type ActivityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewActivityService constructs an ActivityService.
func NewActivityService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ActivityService {
	return &ActivityService{db: db, repomanager: m}
}

// SummaryStats computes the per-day totals and per-category averages for
// userID. Users with no entries get empty sequences.
func (s *ActivityService) SummaryStats(ctx context.Context, userID int64) (*ActivityStats, error) {
	repo := s.repomanager.Activity(s.db)

	perDay, err := repo.DailyCaloriesSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error computing daily summary: %w", err)
	}

	perCategory, err := repo.PerCategoryCaloriesSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error computing category summary: %w", err)
	}

	return &ActivityStats{PerDay: perDay, PerCategory: perCategory}, nil
}
