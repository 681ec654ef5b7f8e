package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
)

func SeedIngredient(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Ingredient {
	tb.Helper()
	row := &types.Ingredient{
		Name:     name,
		Proteins: 10,
		Carbs:    70,
		Fats:     1.5,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed ingredient: %v", err)
	}
	return row
}

func SeedRecipe(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, ingredientIDs ...int64) *types.Recipe {
	tb.Helper()
	row := &types.Recipe{
		Name:         name,
		Category:     "Baking",
		Instructions: "Mix and bake.",
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	for _, id := range ingredientIDs {
		link := &types.RecipeIngredient{RecipeID: row.ID, IngredientID: id, Amount: 100, Unit: "g"}
		if err := tx.WithContext(ctx).Omit("Recipe", "Ingredient").Create(link).Error; err != nil {
			tb.Fatalf("seed recipe ingredient: %v", err)
		}
	}
	return row
}

func SeedMealPlan(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, recipeIDs ...int64) *types.MealPlan {
	tb.Helper()
	row := &types.MealPlan{
		Name:     name,
		Category: "Weekly",
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed meal plan: %v", err)
	}
	for _, id := range recipeIDs {
		link := &types.RecipeMeal{MealPlanID: row.ID, RecipeID: id, Day: "Monday", MealType: "Lunch"}
		if err := tx.WithContext(ctx).Omit("MealPlan", "Recipe").Create(link).Error; err != nil {
			tb.Fatalf("seed recipe meal: %v", err)
		}
	}
	return row
}

func CountRows(tb testing.TB, ctx context.Context, tx *gorm.DB, model interface{}) int64 {
	tb.Helper()
	var n int64
	if err := tx.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count %T: %v", model, err)
	}
	return n
}
