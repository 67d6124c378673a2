package models

// DailyStat is the calorie total for one UTC calendar day.
type DailyStat struct {
	Date                string `json:"date"`
	TotalCaloriesPerDay int64  `json:"totalCaloriesPerDay"`
}

// CategoryStat is the mean calorie count for one category, rounded to one
// decimal place.
type CategoryStat struct {
	Category               string  `json:"category"`
	AvgCaloriesPerCategory float64 `json:"avgCaloriesPerCategory"`
}
