package api

import "time"

// User is the account record as serialized by the API.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Nutrition is one food-intake entry.
type Nutrition struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Calories  int       `json:"calories"`
	ImageURL  string    `json:"image_url"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest carries the fields for account creation.
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// CreateNutritionRequest carries the fields of a new entry.
type CreateNutritionRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Calories int    `json:"calories"`
	ImageURL string `json:"image_url"`
}

// DailyStat is the calorie total of one calendar day.
type DailyStat struct {
	Date                string `json:"date"`
	TotalCaloriesPerDay int64  `json:"totalCaloriesPerDay"`
}

// CategoryStat is the average calories of one category.
type CategoryStat struct {
	Category               string  `json:"category"`
	AvgCaloriesPerCategory float64 `json:"avgCaloriesPerCategory"`
}

// CalorieStats groups the summary sequences returned by the activity endpoint.
type CalorieStats struct {
	PerDay      []DailyStat    `json:"perDay"`
	PerCategory []CategoryStat `json:"perCategory"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
