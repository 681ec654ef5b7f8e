package aggregates_test

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/nutriplan-backend/internal/data/aggregates"
	aggtestutil "github.com/yungbote/nutriplan-backend/internal/data/aggregates/testutil"
	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	"github.com/yungbote/nutriplan-backend/internal/data/repos/testutil"
	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
)

type fixture struct {
	db    *gorm.DB
	hooks *aggtestutil.HooksRecorder

	ingredientRepo       repos.IngredientRepo
	recipeRepo           repos.RecipeRepo
	mealPlanRepo         repos.MealPlanRepo
	recipeIngredientRepo repos.RecipeIngredientRepo
	recipeMealRepo       repos.RecipeMealRepo

	ingredients domainagg.IngredientAggregate
	recipes     domainagg.RecipeAggregate
	mealPlans   domainagg.MealPlanAggregate
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	f := &fixture{
		db:                   db,
		hooks:                &aggtestutil.HooksRecorder{},
		ingredientRepo:       repos.NewIngredientRepo(db, log),
		recipeRepo:           repos.NewRecipeRepo(db, log),
		mealPlanRepo:         repos.NewMealPlanRepo(db, log),
		recipeIngredientRepo: repos.NewRecipeIngredientRepo(db, log),
		recipeMealRepo:       repos.NewRecipeMealRepo(db, log),
	}
	f.build(aggregates.BaseDeps{DB: db, Log: log, Hooks: f.hooks})
	return f
}

func (f *fixture) build(base aggregates.BaseDeps) {
	f.ingredients = aggregates.NewIngredientAggregate(aggregates.IngredientAggregateDeps{
		Base:              base,
		Ingredients:       f.ingredientRepo,
		RecipeIngredients: f.recipeIngredientRepo,
	})
	f.recipes = aggregates.NewRecipeAggregate(aggregates.RecipeAggregateDeps{
		Base:              base,
		Recipes:           f.recipeRepo,
		Ingredients:       f.ingredientRepo,
		RecipeIngredients: f.recipeIngredientRepo,
		RecipeMeals:       f.recipeMealRepo,
	})
	f.mealPlans = aggregates.NewMealPlanAggregate(aggregates.MealPlanAggregateDeps{
		Base:        base,
		MealPlans:   f.mealPlanRepo,
		Recipes:     f.recipeRepo,
		RecipeMeals: f.recipeMealRepo,
	})
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	return testutil.CountRows(t, context.Background(), f.db, model)
}

func mustAddIngredient(t *testing.T, f *fixture, name string) int64 {
	t.Helper()
	res, err := f.ingredients.AddIngredient(context.Background(), domainagg.AddIngredientInput{Name: name, Proteins: 10, Carbs: 70, Fats: 1})
	if err != nil {
		t.Fatalf("AddIngredient(%s): %v", name, err)
	}
	return res.IngredientID
}

func TestIngredientAggregateDuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mustAddIngredient(t, f, "Flour")
	_, err := f.ingredients.AddIngredient(ctx, domainagg.AddIngredientInput{Name: "Flour"})
	if !domainagg.IsCode(err, domainagg.CodeDuplicateName) {
		t.Fatalf("second add: want duplicate_name got=%v", err)
	}
	if n := f.count(t, &types.Ingredient{}); n != 1 {
		t.Fatalf("ingredient rows: want=1 got=%d", n)
	}
	if len(f.hooks.Conflicts) != 1 {
		t.Fatalf("conflicts: want=1 got=%d", len(f.hooks.Conflicts))
	}

	// names are case sensitive
	mustAddIngredient(t, f, "flour")
}

func TestIngredientAggregateValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.ingredients.AddIngredient(context.Background(), domainagg.AddIngredientInput{Name: "Oil", Fats: -1})
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("want validation got=%v", err)
	}
	if n := f.count(t, &types.Ingredient{}); n != 0 {
		t.Fatalf("ingredient rows: want=0 got=%d", n)
	}
}

func TestIngredientAggregateUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	flourID := mustAddIngredient(t, f, "Flour")
	mustAddIngredient(t, f, "Sugar")

	// keeping its own name is not a duplicate
	if _, err := f.ingredients.UpdateIngredient(ctx, domainagg.UpdateIngredientInput{ID: flourID, Name: "Flour", Proteins: 12, Carbs: 72, Fats: 2}); err != nil {
		t.Fatalf("update same name: %v", err)
	}
	got, err := f.ingredientRepo.GetByID(dbctx.Background(ctx), flourID)
	if err != nil || got.Proteins != 12 || got.Carbs != 72 || got.Fats != 2 {
		t.Fatalf("updated row: err=%v row=%+v", err, got)
	}

	_, err = f.ingredients.UpdateIngredient(ctx, domainagg.UpdateIngredientInput{ID: flourID, Name: "Sugar"})
	if !domainagg.IsCode(err, domainagg.CodeDuplicateName) {
		t.Fatalf("update to other name: want duplicate_name got=%v", err)
	}

	_, err = f.ingredients.UpdateIngredient(ctx, domainagg.UpdateIngredientInput{ID: 9999, Name: "Salt"})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("update missing: want not_found got=%v", err)
	}
}

func TestIngredientAggregateDeleteGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	flourID := mustAddIngredient(t, f, "Flour")
	saltID := mustAddIngredient(t, f, "Salt")
	if _, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{
		Name: "Bread", Category: "Baking", Instructions: "Bake.",
		Ingredients: []domainagg.RecipeIngredientInput{{IngredientID: flourID, Amount: 500, Unit: "g"}},
	}); err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}

	_, err := f.ingredients.DeleteIngredient(ctx, domainagg.DeleteIngredientInput{ID: flourID})
	if !domainagg.IsCode(err, domainagg.CodeInUse) {
		t.Fatalf("delete referenced: want in_use got=%v", err)
	}
	if n := f.count(t, &types.RecipeIngredient{}); n != 1 {
		t.Fatalf("link rows after blocked delete: want=1 got=%d", n)
	}
	if row, _ := f.ingredientRepo.GetByID(dbctx.Background(ctx), flourID); row == nil {
		t.Fatalf("referenced ingredient was removed")
	}

	if _, err := f.ingredients.DeleteIngredient(ctx, domainagg.DeleteIngredientInput{ID: saltID}); err != nil {
		t.Fatalf("delete unreferenced: %v", err)
	}
	_, err = f.ingredients.DeleteIngredient(ctx, domainagg.DeleteIngredientInput{ID: saltID})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("delete missing: want not_found got=%v", err)
	}
}

func TestRecipeAggregateMissingIngredientWritesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	flourID := mustAddIngredient(t, f, "Flour")
	_, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{
		Name: "Bread", Category: "Baking", Instructions: "Bake.",
		Ingredients: []domainagg.RecipeIngredientInput{
			{IngredientID: flourID, Amount: 500, Unit: "g"},
			{IngredientID: 777, Amount: 1, Unit: "pinch"},
			{IngredientID: 888, Amount: 1, Unit: "pinch"},
		},
	})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("want not_found got=%v", err)
	}
	if msg := domainagg.MessageOf(err); msg != "ingredient not found: 777" {
		t.Fatalf("first missing id: got=%q", msg)
	}
	if n := f.count(t, &types.Recipe{}); n != 0 {
		t.Fatalf("recipe rows: want=0 got=%d", n)
	}
	if n := f.count(t, &types.RecipeIngredient{}); n != 0 {
		t.Fatalf("link rows: want=0 got=%d", n)
	}
}

func TestRecipeAggregateDuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := domainagg.AddRecipeInput{Name: "Toast", Category: "Breakfast", Instructions: "Toast it."}
	if _, err := f.recipes.AddRecipe(ctx, in); err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}
	if _, err := f.recipes.AddRecipe(ctx, in); !domainagg.IsCode(err, domainagg.CodeDuplicateName) {
		t.Fatalf("second add: want duplicate_name got=%v", err)
	}
}

// failingRecipeIngredientRepo fails the link insert when it would write row failOn (1-based).
type failingRecipeIngredientRepo struct {
	repos.RecipeIngredientRepo
	failOn int
}

func (r failingRecipeIngredientRepo) Create(dbc dbctx.Context, rows []*types.RecipeIngredient) ([]*types.RecipeIngredient, error) {
	if len(rows) >= r.failOn {
		if r.failOn > 1 {
			if _, err := r.RecipeIngredientRepo.Create(dbc, rows[:r.failOn-1]); err != nil {
				return nil, err
			}
		}
		return nil, errors.New("injected link insert failure")
	}
	return r.RecipeIngredientRepo.Create(dbc, rows)
}

func TestRecipeAggregateAtomicOnLinkFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := mustAddIngredient(t, f, "Flour")
	b := mustAddIngredient(t, f, "Water")
	c := mustAddIngredient(t, f, "Yeast")

	f.recipeIngredientRepo = failingRecipeIngredientRepo{RecipeIngredientRepo: f.recipeIngredientRepo, failOn: 3}
	f.build(aggregates.BaseDeps{DB: f.db, Log: testutil.Logger(t), Hooks: f.hooks})

	_, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{
		Name: "Bread", Category: "Baking", Instructions: "Bake.",
		Ingredients: []domainagg.RecipeIngredientInput{
			{IngredientID: a, Amount: 500, Unit: "g"},
			{IngredientID: b, Amount: 300, Unit: "ml"},
			{IngredientID: c, Amount: 7, Unit: "g"},
		},
	})
	if !domainagg.IsCode(err, domainagg.CodeStorage) {
		t.Fatalf("want storage got=%v", err)
	}
	if n := f.count(t, &types.Recipe{}); n != 0 {
		t.Fatalf("recipe rows after rollback: want=0 got=%d", n)
	}
	if n := f.count(t, &types.RecipeIngredient{}); n != 0 {
		t.Fatalf("link rows after rollback: want=0 got=%d", n)
	}
}

// failingRecipeMealRepo writes the first failOn-1 links then fails.
type failingRecipeMealRepo struct {
	repos.RecipeMealRepo
	failOn int
}

func (r failingRecipeMealRepo) Create(dbc dbctx.Context, rows []*types.RecipeMeal) ([]*types.RecipeMeal, error) {
	if len(rows) >= r.failOn {
		if r.failOn > 1 {
			if _, err := r.RecipeMealRepo.Create(dbc, rows[:r.failOn-1]); err != nil {
				return nil, err
			}
		}
		return nil, errors.New("injected recipe meal insert failure")
	}
	return r.RecipeMealRepo.Create(dbc, rows)
}

func TestMealPlanAggregateAtomicOnLinkFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toast, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{Name: "Toast", Category: "Breakfast", Instructions: "Toast it."})
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}

	f.recipeMealRepo = failingRecipeMealRepo{RecipeMealRepo: f.recipeMealRepo, failOn: 2}
	f.build(aggregates.BaseDeps{DB: f.db, Log: testutil.Logger(t), Hooks: f.hooks})

	_, err = f.mealPlans.AddMealPlan(ctx, domainagg.AddMealPlanInput{
		Name: "Week 1", Category: "Bulk",
		Recipes: []domainagg.RecipeMealInput{
			{RecipeID: toast.RecipeID, Day: "Monday", MealType: "Breakfast"},
			{RecipeID: toast.RecipeID, Day: "Tuesday", MealType: "Breakfast"},
		},
	})
	if !domainagg.IsCode(err, domainagg.CodeStorage) {
		t.Fatalf("want storage got=%v", err)
	}
	if n := f.count(t, &types.MealPlan{}); n != 0 {
		t.Fatalf("meal plan rows after rollback: want=0 got=%d", n)
	}
	if n := f.count(t, &types.RecipeMeal{}); n != 0 {
		t.Fatalf("link rows after rollback: want=0 got=%d", n)
	}
}

func TestRecipeAggregateAtomicOnCommitFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flourID := mustAddIngredient(t, f, "Flour")

	runner := &aggtestutil.InjectedTxRunner{DB: f.db, FailCommit: errors.New("commit lost")}
	f.build(aggregates.BaseDeps{DB: f.db, Log: testutil.Logger(t), Hooks: f.hooks, Runner: runner})

	_, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{
		Name: "Bread", Category: "Baking", Instructions: "Bake.",
		Ingredients: []domainagg.RecipeIngredientInput{{IngredientID: flourID, Amount: 500, Unit: "g"}},
	})
	if !domainagg.IsCode(err, domainagg.CodeStorage) {
		t.Fatalf("want storage got=%v", err)
	}
	if runner.RollbackCalls != 1 || runner.CommitCalls != 0 {
		t.Fatalf("runner counters: rollback=%d commit=%d", runner.RollbackCalls, runner.CommitCalls)
	}
	if n := f.count(t, &types.Recipe{}); n != 0 {
		t.Fatalf("recipe rows: want=0 got=%d", n)
	}
}

func TestRecipeAggregateUpdateNotImplemented(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{Name: "Toast", Category: "Breakfast", Instructions: "Toast it."})
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}

	runner := &aggtestutil.InjectedTxRunner{DB: f.db}
	f.build(aggregates.BaseDeps{DB: f.db, Hooks: f.hooks, Runner: runner})
	_, err = f.recipes.UpdateRecipe(ctx, domainagg.UpdateRecipeInput{ID: res.RecipeID, Name: "Changed"})
	if !domainagg.IsCode(err, domainagg.CodeNotImplemented) {
		t.Fatalf("want not_implemented got=%v", err)
	}
	if runner.BeginCalls != 0 {
		t.Fatalf("update must not open a transaction, begin=%d", runner.BeginCalls)
	}
	row, _ := f.recipeRepo.GetByID(dbctx.Background(ctx), res.RecipeID)
	if row == nil || row.Name != "Toast" {
		t.Fatalf("recipe changed: %+v", row)
	}
}

func TestRecipeAggregateDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	flourID := mustAddIngredient(t, f, "Flour")

	bread, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{
		Name: "Bread", Category: "Baking", Instructions: "Bake.",
		Ingredients: []domainagg.RecipeIngredientInput{{IngredientID: flourID, Amount: 500, Unit: "g"}},
	})
	if err != nil {
		t.Fatalf("AddRecipe bread: %v", err)
	}
	cake, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{
		Name: "Cake", Category: "Baking", Instructions: "Bake longer.",
		Ingredients: []domainagg.RecipeIngredientInput{{IngredientID: flourID, Amount: 200, Unit: "g"}},
	})
	if err != nil {
		t.Fatalf("AddRecipe cake: %v", err)
	}
	if _, err := f.mealPlans.AddMealPlan(ctx, domainagg.AddMealPlanInput{
		Name: "Week 1", Category: "Bulk",
		Recipes: []domainagg.RecipeMealInput{{RecipeID: bread.RecipeID, Day: "Monday", MealType: "Lunch"}},
	}); err != nil {
		t.Fatalf("AddMealPlan: %v", err)
	}

	_, err = f.recipes.DeleteRecipe(ctx, domainagg.DeleteRecipeInput{ID: bread.RecipeID})
	if !domainagg.IsCode(err, domainagg.CodeInUse) {
		t.Fatalf("delete referenced recipe: want in_use got=%v", err)
	}
	if row, _ := f.recipeRepo.GetByID(dbctx.Background(ctx), bread.RecipeID); row == nil {
		t.Fatalf("referenced recipe was removed")
	}
	if n := f.count(t, &types.RecipeMeal{}); n != 1 {
		t.Fatalf("meal links: want=1 got=%d", n)
	}

	res, err := f.recipes.DeleteRecipe(ctx, domainagg.DeleteRecipeInput{ID: cake.RecipeID})
	if err != nil {
		t.Fatalf("delete cake: %v", err)
	}
	if res.LinksRemoved != 1 {
		t.Fatalf("links removed: want=1 got=%d", res.LinksRemoved)
	}
	if n := f.count(t, &types.RecipeIngredient{}); n != 1 {
		t.Fatalf("remaining ingredient links: want=1 got=%d", n)
	}

	_, err = f.recipes.DeleteRecipe(ctx, domainagg.DeleteRecipeInput{ID: cake.RecipeID})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("delete missing: want not_found got=%v", err)
	}
}

func TestMealPlanAggregateMissingRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.mealPlans.AddMealPlan(ctx, domainagg.AddMealPlanInput{
		Name: "Week 1", Category: "Bulk",
		Recipes: []domainagg.RecipeMealInput{{RecipeID: 9999, Day: "Monday", MealType: "Dinner"}},
	})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("want not_found got=%v", err)
	}
	if n := f.count(t, &types.MealPlan{}); n != 0 {
		t.Fatalf("meal plan rows: want=0 got=%d", n)
	}
}

func TestMealPlanAggregateDuplicateAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	in := domainagg.AddMealPlanInput{Name: "Cut", Category: "Diet"}
	res, err := f.mealPlans.AddMealPlan(ctx, in)
	if err != nil {
		t.Fatalf("AddMealPlan: %v", err)
	}
	if _, err := f.mealPlans.AddMealPlan(ctx, in); !domainagg.IsCode(err, domainagg.CodeDuplicateName) {
		t.Fatalf("second add: want duplicate_name got=%v", err)
	}
	if _, err := f.mealPlans.UpdateMealPlan(ctx, domainagg.UpdateMealPlanInput{ID: res.MealPlanID, Name: "Bulk"}); !domainagg.IsCode(err, domainagg.CodeNotImplemented) {
		t.Fatalf("update: want not_implemented got=%v", err)
	}
}

// failingMealPlanRepo fails the parent delete after links were removed.
type failingMealPlanRepo struct {
	repos.MealPlanRepo
}

func (failingMealPlanRepo) DeleteByID(dbctx.Context, int64) (int64, error) {
	return 0, errors.New("injected meal plan delete failure")
}

func TestMealPlanAggregateDeleteIsAtomic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	toast, err := f.recipes.AddRecipe(ctx, domainagg.AddRecipeInput{Name: "Toast", Category: "Breakfast", Instructions: "Toast it."})
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}
	plan, err := f.mealPlans.AddMealPlan(ctx, domainagg.AddMealPlanInput{
		Name: "Week 1", Category: "Bulk",
		Recipes: []domainagg.RecipeMealInput{
			{RecipeID: toast.RecipeID, Day: "Monday", MealType: "Breakfast"},
			{RecipeID: toast.RecipeID, Day: "Tuesday", MealType: "Breakfast"},
		},
	})
	if err != nil {
		t.Fatalf("AddMealPlan: %v", err)
	}
	if plan.LinkCount != 2 {
		t.Fatalf("link count: want=2 got=%d", plan.LinkCount)
	}

	healthy := f.mealPlanRepo
	f.mealPlanRepo = failingMealPlanRepo{MealPlanRepo: healthy}
	f.build(aggregates.BaseDeps{DB: f.db, Log: testutil.Logger(t), Hooks: f.hooks})
	_, err = f.mealPlans.DeleteMealPlan(ctx, domainagg.DeleteMealPlanInput{ID: plan.MealPlanID})
	if !domainagg.IsCode(err, domainagg.CodeStorage) {
		t.Fatalf("failing delete: want storage got=%v", err)
	}
	if n := f.count(t, &types.RecipeMeal{}); n != 2 {
		t.Fatalf("links after rolled back delete: want=2 got=%d", n)
	}

	f.mealPlanRepo = healthy
	f.build(aggregates.BaseDeps{DB: f.db, Log: testutil.Logger(t), Hooks: f.hooks})
	res, err := f.mealPlans.DeleteMealPlan(ctx, domainagg.DeleteMealPlanInput{ID: plan.MealPlanID})
	if err != nil {
		t.Fatalf("DeleteMealPlan: %v", err)
	}
	if res.LinksRemoved != 2 {
		t.Fatalf("links removed: want=2 got=%d", res.LinksRemoved)
	}
	if n := f.count(t, &types.MealPlan{}); n != 0 {
		t.Fatalf("meal plans: want=0 got=%d", n)
	}
	if n := f.count(t, &types.RecipeMeal{}); n != 0 {
		t.Fatalf("links: want=0 got=%d", n)
	}

	_, err = f.mealPlans.DeleteMealPlan(ctx, domainagg.DeleteMealPlanInput{ID: plan.MealPlanID})
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("delete missing: want not_found got=%v", err)
	}

	// the recipe is free again once no meal plan references it
	if _, err := f.recipes.DeleteRecipe(ctx, domainagg.DeleteRecipeInput{ID: toast.RecipeID}); err != nil {
		t.Fatalf("DeleteRecipe after plan removal: %v", err)
	}
}
