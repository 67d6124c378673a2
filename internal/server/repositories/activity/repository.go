package activity

import (
	"context"

	"github.com/dmitrijs2005/lifetracker/internal/server/models"
)

type Repository interface {
	DailyCaloriesSummary(ctx context.Context, userID int64) ([]*models.DailyStat, error)
	PerCategoryCaloriesSummary(ctx context.Context, userID int64) ([]*models.CategoryStat, error)
}
