// Package nutrition provides the PostgreSQL-backed repository for nutrition
// entries. Every query is scoped by id or owner; cross-user listing does not
// exist at this layer.
package nutrition

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifetracker/internal/common"
	"github.com/dmitrijs2005/lifetracker/internal/dbx"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an entry and returns it with the generated id and creation
// timestamp filled in. A zero CreatedAt defers to the database clock.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Nutrition) (*models.Nutrition, error) {
	query := `
		INSERT INTO nutrition (name, category, calories, image_url, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
		RETURNING id, created_at
	`

	var createdAt sql.NullTime
	if !entry.CreatedAt.IsZero() {
		createdAt = sql.NullTime{Time: entry.CreatedAt, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		entry.Name, entry.Category, entry.Calories, entry.ImageURL, entry.UserID, createdAt).
		Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

// GetByID returns the entry with the given id, owner included.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Nutrition, error) {
	query := `
		SELECT id, name, category, calories, image_url, user_id, created_at
		FROM nutrition
		WHERE id = $1
	`

	entry := &models.Nutrition{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&entry.ID, &entry.Name, &entry.Category, &entry.Calories, &entry.ImageURL, &entry.UserID, &entry.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

// ListForUser returns all entries owned by userID in insertion order.
// Users without entries get an empty slice, not nil.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID int64) ([]*models.Nutrition, error) {
	query := `
		SELECT id, name, category, calories, image_url, user_id, created_at
		FROM nutrition
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	result := []*models.Nutrition{}
	for rows.Next() {
		var item models.Nutrition
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Calories, &item.ImageURL, &item.UserID, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
