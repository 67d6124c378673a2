package models

import "time"

// Nutrition is a calorie entry owned by exactly one user. Entries are
// immutable once created.
type Nutrition struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Calories  int       `json:"calories"`
	ImageURL  string    `json:"image_url"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
