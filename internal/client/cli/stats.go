package cli

import (
	"context"
	"fmt"
)

func (a *App) stats(ctx context.Context) {

	stats, err := a.api.ActivityStats(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Println("Calories per day:")
	if len(stats.PerDay) == 0 {
		fmt.Println("  (no data)")
	}
	for _, d := range stats.PerDay {
		fmt.Printf("  %s\t%d kcal\n", d.Date, d.TotalCaloriesPerDay)
	}

	fmt.Println("Average calories per category:")
	if len(stats.PerCategory) == 0 {
		fmt.Println("  (no data)")
	}
	for _, c := range stats.PerCategory {
		fmt.Printf("  %s\t%.1f kcal\n", c.Category, c.AvgCaloriesPerCategory)
	}
}
