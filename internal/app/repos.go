package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type Repos struct {
	Ingredient       repos.IngredientRepo
	Recipe           repos.RecipeRepo
	MealPlan         repos.MealPlanRepo
	RecipeIngredient repos.RecipeIngredientRepo
	RecipeMeal       repos.RecipeMealRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Ingredient:       repos.NewIngredientRepo(db, log),
		Recipe:           repos.NewRecipeRepo(db, log),
		MealPlan:         repos.NewMealPlanRepo(db, log),
		RecipeIngredient: repos.NewRecipeIngredientRepo(db, log),
		RecipeMeal:       repos.NewRecipeMealRepo(db, log),
	}
}
