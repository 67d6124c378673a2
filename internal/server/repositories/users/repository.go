package users

import (
	"context"

	"github.com/dmitrijs2005/lifetracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByEmailOrUsername(ctx context.Context, email string, username string) (*models.User, error)
}
