package nutrition

import (
	"context"

	"github.com/dmitrijs2005/lifetracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.Nutrition) (*models.Nutrition, error)
	GetByID(ctx context.Context, id int64) (*models.Nutrition, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.Nutrition, error)
}
