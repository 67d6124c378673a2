package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifetracker/internal/apierror"
	"github.com/dmitrijs2005/lifetracker/internal/common"
	"github.com/dmitrijs2005/lifetracker/internal/server/config"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
	"github.com/dmitrijs2005/lifetracker/internal/server/repositories/repomanager"
)

// CreateNutritionRequest carries the caller-supplied fields of a new entry.
// CreatedAt is optional; a zero value defers to the database clock.
type CreateNutritionRequest struct {
	Name      string
	Category  string
	Calories  int
	ImageURL  string
	CreatedAt sql.NullTime
}

// NutritionService provides CRUD over nutrition entries, always scoped to an
// owning user.
type NutritionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNutritionService constructs a NutritionService.
func NewNutritionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *NutritionService {
	return &NutritionService{db: db, repomanager: m}
}

// Create validates and inserts an entry for userID, returning the record
// including its generated id.
func (s *NutritionService) Create(ctx context.Context, req CreateNutritionRequest, userID int64) (*models.Nutrition, error) {
	if req.Name == "" || req.Category == "" || req.Calories <= 0 || req.ImageURL == "" || userID == 0 {
		return nil, apierror.BadRequest("Missing required field.")
	}

	entry := &models.Nutrition{
		Name:     req.Name,
		Category: req.Category,
		Calories: req.Calories,
		ImageURL: req.ImageURL,
		UserID:   userID,
	}
	if req.CreatedAt.Valid {
		entry.CreatedAt = req.CreatedAt.Time
	}

	repo := s.repomanager.Nutrition(s.db)
	created, err := repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("error creating nutrition entry: %w", err)
	}
	return created, nil
}

// FetchByID returns a single entry regardless of owner; ownership is enforced
// by the HTTP layer's guard before the entry reaches a caller.
func (s *NutritionService) FetchByID(ctx context.Context, id int64) (*models.Nutrition, error) {
	repo := s.repomanager.Nutrition(s.db)
	entry, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("No nutrition found with id %d", id))
		}
		return nil, fmt.Errorf("error fetching nutrition entry: %w", err)
	}
	return entry, nil
}

// ListForUser returns all entries owned by userID; empty slice when none.
func (s *NutritionService) ListForUser(ctx context.Context, userID int64) ([]*models.Nutrition, error) {
	if userID == 0 {
		return nil, apierror.BadRequest("Invalid or missing user id.")
	}

	repo := s.repomanager.Nutrition(s.db)
	entries, err := repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing nutrition entries: %w", err)
	}
	return entries, nil
}
