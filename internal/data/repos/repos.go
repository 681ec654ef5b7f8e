package repos

import (
	"github.com/yungbote/nutriplan-backend/internal/data/repos/nutrition"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type IngredientRepo = nutrition.IngredientRepo
type RecipeRepo = nutrition.RecipeRepo
type MealPlanRepo = nutrition.MealPlanRepo

type RecipeIngredientRepo = nutrition.RecipeIngredientRepo
type RecipeMealRepo = nutrition.RecipeMealRepo

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return nutrition.NewIngredientRepo(db, baseLog)
}
func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return nutrition.NewRecipeRepo(db, baseLog)
}
func NewMealPlanRepo(db *gorm.DB, baseLog *logger.Logger) MealPlanRepo {
	return nutrition.NewMealPlanRepo(db, baseLog)
}
func NewRecipeIngredientRepo(db *gorm.DB, baseLog *logger.Logger) RecipeIngredientRepo {
	return nutrition.NewRecipeIngredientRepo(db, baseLog)
}
func NewRecipeMealRepo(db *gorm.DB, baseLog *logger.Logger) RecipeMealRepo {
	return nutrition.NewRecipeMealRepo(db, baseLog)
}
