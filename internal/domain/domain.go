package domain

import "github.com/yungbote/nutriplan-backend/internal/domain/nutrition"

type Ingredient = nutrition.Ingredient
type Recipe = nutrition.Recipe
type RecipeWithIngredients = nutrition.RecipeWithIngredients
type MealPlan = nutrition.MealPlan
type MealPlanWithRecipes = nutrition.MealPlanWithRecipes
type RecipeIngredient = nutrition.RecipeIngredient
type RecipeMeal = nutrition.RecipeMeal

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&Ingredient{},
		&Recipe{},
		&MealPlan{},
		&RecipeIngredient{},
		&RecipeMeal{},
	}
}
