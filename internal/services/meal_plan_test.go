package services

import (
	"context"
	"testing"

	"github.com/yungbote/nutriplan-backend/internal/data/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	"github.com/yungbote/nutriplan-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
)

type nutritionServices struct {
	ingredients IngredientService
	recipes     RecipeService
	mealPlans   MealPlanService
}

func newSQLiteServices(t *testing.T) nutritionServices {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	ingredientRepo := repos.NewIngredientRepo(db, log)
	recipeRepo := repos.NewRecipeRepo(db, log)
	mealPlanRepo := repos.NewMealPlanRepo(db, log)
	recipeIngredientRepo := repos.NewRecipeIngredientRepo(db, log)
	recipeMealRepo := repos.NewRecipeMealRepo(db, log)
	base := aggregates.BaseDeps{DB: db, Log: log}

	return nutritionServices{
		ingredients: NewIngredientService(log, ingredientRepo, aggregates.NewIngredientAggregate(aggregates.IngredientAggregateDeps{
			Base: base, Ingredients: ingredientRepo, RecipeIngredients: recipeIngredientRepo,
		})),
		recipes: NewRecipeService(log, recipeRepo, recipeIngredientRepo, aggregates.NewRecipeAggregate(aggregates.RecipeAggregateDeps{
			Base: base, Recipes: recipeRepo, Ingredients: ingredientRepo, RecipeIngredients: recipeIngredientRepo, RecipeMeals: recipeMealRepo,
		}), 4),
		mealPlans: NewMealPlanService(log, mealPlanRepo, recipeMealRepo, aggregates.NewMealPlanAggregate(aggregates.MealPlanAggregateDeps{
			Base: base, MealPlans: mealPlanRepo, Recipes: recipeRepo, RecipeMeals: recipeMealRepo,
		}), 4),
	}
}

func TestNutritionEndToEnd(t *testing.T) {
	svcs := newSQLiteServices(t)
	ctx := context.Background()

	flour, err := svcs.ingredients.Add(ctx, domainagg.AddIngredientInput{Name: "Flour", Proteins: 10, Carbs: 70, Fats: 1})
	if err != nil {
		t.Fatalf("add ingredient: %v", err)
	}
	if _, err := svcs.recipes.Add(ctx, domainagg.AddRecipeInput{
		Name: "Bread", Category: "Bakery", Instructions: "Mix and bake",
		Ingredients: []domainagg.RecipeIngredientInput{{IngredientID: flour.IngredientID, Amount: 500, Unit: "g"}},
	}); err != nil {
		t.Fatalf("add recipe: %v", err)
	}

	recipes, err := svcs.recipes.List(ctx)
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Name != "Bread" {
		t.Fatalf("recipes: %+v", recipes)
	}
	links := recipes[0].Ingredients
	if len(links) != 1 || links[0].IngredientID != flour.IngredientID || links[0].Amount != 500 || links[0].Unit != "g" {
		t.Fatalf("bread links: %+v", links)
	}

	_, err = svcs.mealPlans.Add(ctx, domainagg.AddMealPlanInput{
		Name: "Week 1", Category: "Bulk",
		Recipes: []domainagg.RecipeMealInput{{RecipeID: 9999, Day: "Monday", MealType: "Dinner"}},
	})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("meal plan with missing recipe: want not_found got=%v", err)
	}
	plans, err := svcs.mealPlans.List(ctx)
	if err != nil {
		t.Fatalf("list meal plans: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("meal plans: want none got=%+v", plans)
	}
}

func TestMealPlanServiceListIncludesLinks(t *testing.T) {
	svcs := newSQLiteServices(t)
	ctx := context.Background()

	toast, err := svcs.recipes.Add(ctx, domainagg.AddRecipeInput{Name: "Toast", Category: "Breakfast", Instructions: "Toast it."})
	if err != nil {
		t.Fatalf("add recipe: %v", err)
	}
	for _, name := range []string{"Cut", "Bulk"} {
		if _, err := svcs.mealPlans.Add(ctx, domainagg.AddMealPlanInput{
			Name: name, Category: "Diet",
			Recipes: []domainagg.RecipeMealInput{{RecipeID: toast.RecipeID, Day: "Monday", MealType: "Breakfast"}},
		}); err != nil {
			t.Fatalf("add meal plan %s: %v", name, err)
		}
	}

	plans, err := svcs.mealPlans.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(plans) != 2 || plans[0].Name != "Cut" || plans[1].Name != "Bulk" {
		t.Fatalf("plans: %+v", plans)
	}
	for _, plan := range plans {
		if len(plan.Recipes) != 1 || plan.Recipes[0].RecipeID != toast.RecipeID || plan.Recipes[0].MealType != "Breakfast" {
			t.Fatalf("plan %s links: %+v", plan.Name, plan.Recipes)
		}
	}

	if _, err := svcs.mealPlans.Delete(ctx, plans[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svcs.mealPlans.Update(ctx, domainagg.UpdateMealPlanInput{ID: plans[1].ID}); !domainagg.IsCode(err, domainagg.CodeNotImplemented) {
		t.Fatalf("Update: want not_implemented got=%v", err)
	}
}
