package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/lifetracker/internal/client/api"
)

func (a *App) list(ctx context.Context) {

	entries, err := a.api.ListNutrition(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet")
		return
	}

	for _, e := range entries {
		fmt.Printf("%d\t%s\t%s\t%d kcal\t%s\n",
			e.ID, e.CreatedAt.Format("2006-01-02"), e.Category, e.Calories, e.Name)
	}
}

func (a *App) add(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	category, err := GetSimpleText(a.reader, "Enter category", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	calories, err := GetInt(a.reader, "Enter calories", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}
	imageURL, err := GetSimpleText(a.reader, "Enter image url", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	entry, err := a.api.CreateNutrition(ctx, api.CreateNutritionRequest{
		Name:     name,
		Category: category,
		Calories: calories,
		ImageURL: imageURL,
	})
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("Saved entry %d\n", entry.ID)
}

func (a *App) get(ctx context.Context, arg string) {

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("Usage: get <id>")
		return
	}

	entry, err := a.api.GetNutrition(ctx, id)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("Name:     %s\n", entry.Name)
	fmt.Printf("Category: %s\n", entry.Category)
	fmt.Printf("Calories: %d\n", entry.Calories)
	fmt.Printf("Image:    %s\n", entry.ImageURL)
	fmt.Printf("Date:     %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
}
