package main

import (
	"context"
	"log"

	"github.com/recipeshare/backend/config"
	"github.com/recipeshare/backend/internal/database"
	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/service"
)

// Seeds a demo account and a small recipe catalog for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	if _, err := authService.Register("Demo Cook", "demo@example.com", "demopassword", "democook"); err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", "demo@example.com").First(&user).Error; err != nil {
		log.Fatalf("Failed to load demo user: %v", err)
	}

	two := 2
	five := 5
	ten := 10
	recipes := []models.Recipe{
		{
			UserID:      user.ID,
			Title:       "Classic Mint Tea",
			Description: "Fresh mint steeped in boiling water.",
			Category:    models.CategoryBeverages,
			Ingredients: models.IngredientList{
				{Name: "Water", Amount: "2", Unit: "cups"},
				{Name: "Fresh mint", Amount: "1", Unit: "handful"},
			},
			Steps: models.StepList{
				{StepNumber: 1, Instruction: "Boil the water."},
				{StepNumber: 2, Instruction: "Pour over the mint and steep for 5 minutes."},
			},
			PrepTime: &two,
			CookTime: &five,
			Servings: &two,
		},
		{
			UserID:      user.ID,
			Title:       "Tomato Soup",
			Description: "Simple weeknight tomato soup.",
			Category:    models.CategorySoups,
			Ingredients: models.IngredientList{
				{Name: "Canned tomatoes", Amount: "800", Unit: "g"},
				{Name: "Onion", Amount: "1", Unit: ""},
				{Name: "Olive oil", Amount: "2", Unit: "tbsp"},
			},
			Steps: models.StepList{
				{StepNumber: 1, Instruction: "Soften the onion in olive oil."},
				{StepNumber: 2, Instruction: "Add tomatoes and simmer for 20 minutes."},
				{StepNumber: 3, Instruction: "Blend until smooth and season."},
			},
			PrepTime:   &ten,
			Difficulty: "easy",
		},
	}

	recipeService := service.NewRecipeService(db)
	for i := range recipes {
		if _, err := recipeService.Create(context.Background(), &recipes[i]); err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", recipes[i].Title, err)
		}
		log.Printf("Seeded recipe %q", recipes[i].Title)
	}

	log.Println("Seed data created")
}
