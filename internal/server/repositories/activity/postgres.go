// Package activity provides the grouped aggregate queries behind summary
// statistics. Results are derived on demand and never persisted.
//
// Both queries scope by user inside SQL (WHERE user_id = $1); rows are never
// filtered after the fact, so entries of other users cannot leak into a
// summary.
package activity

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifetracker/internal/dbx"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
)

// PostgresRepository implements summary queries over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// DailyCaloriesSummary sums calories per UTC calendar day for one user,
// ordered by date ascending.
func (r *PostgresRepository) DailyCaloriesSummary(ctx context.Context, userID int64) ([]*models.DailyStat, error) {
	query := `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS date,
		       SUM(calories) AS total_calories_per_day
		FROM nutrition
		WHERE user_id = $1
		GROUP BY date
		ORDER BY date
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select daily summary: %w", err)
	}
	defer rows.Close()

	result := []*models.DailyStat{}
	for rows.Next() {
		var item models.DailyStat
		if err := rows.Scan(&item.Date, &item.TotalCaloriesPerDay); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// PerCategoryCaloriesSummary averages calories per category for one user,
// rounded to one decimal place and ordered alphabetically.
func (r *PostgresRepository) PerCategoryCaloriesSummary(ctx context.Context, userID int64) ([]*models.CategoryStat, error) {
	query := `
		SELECT category, ROUND(AVG(calories), 1) AS avg_calories_per_category
		FROM nutrition
		WHERE user_id = $1
		GROUP BY category
		ORDER BY category
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select category summary: %w", err)
	}
	defer rows.Close()

	result := []*models.CategoryStat{}
	for rows.Next() {
		var item models.CategoryStat
		if err := rows.Scan(&item.Category, &item.AvgCaloriesPerCategory); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
