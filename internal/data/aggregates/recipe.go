package aggregates

import (
	"context"
	"fmt"

	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
)

type RecipeAggregateDeps struct {
	Base BaseDeps

	Recipes           repos.RecipeRepo
	Ingredients       repos.IngredientRepo
	RecipeIngredients repos.RecipeIngredientRepo
	RecipeMeals       repos.RecipeMealRepo
}

type recipeAggregate struct {
	deps RecipeAggregateDeps
}

func NewRecipeAggregate(deps RecipeAggregateDeps) domainagg.RecipeAggregate {
	deps.Base = deps.Base.withDefaults()
	return &recipeAggregate{deps: deps}
}

func (a *recipeAggregate) Contract() domainagg.Contract {
	return domainagg.RecipeAggregateContract
}

func (a *recipeAggregate) configured() bool {
	return a.deps.Recipes != nil && a.deps.Ingredients != nil &&
		a.deps.RecipeIngredients != nil && a.deps.RecipeMeals != nil
}

func (a *recipeAggregate) AddRecipe(ctx context.Context, in domainagg.AddRecipeInput) (domainagg.AddRecipeResult, error) {
	const op = "Nutrition.Recipe.Add"
	var out domainagg.AddRecipeResult
	if err := validateInput(in); err != nil {
		return out, rejectWrite(a.deps.Base, op, err)
	}
	if !a.configured() {
		return out, domainagg.NewError(domainagg.CodeStorage, op, "recipe aggregate repos not configured", nil)
	}

	wantIDs := make([]int64, 0, len(in.Ingredients))
	for _, link := range in.Ingredients {
		wantIDs = append(wantIDs, link.IngredientID)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		exists, err := a.deps.Recipes.ExistsByName(dbc, in.Name)
		if err != nil {
			return err
		}
		if err := RequireNameAvailable(exists, "recipe", in.Name); err != nil {
			return err
		}

		found, err := a.deps.Ingredients.GetByIDs(dbc, uniqueIDs(wantIDs))
		if err != nil {
			return err
		}
		foundIDs := make([]int64, 0, len(found))
		for _, row := range found {
			foundIDs = append(foundIDs, row.ID)
		}
		if missing, ok := FirstMissingID(wantIDs, foundIDs); ok {
			return notFound(op, fmt.Sprintf("ingredient not found: %d", missing))
		}

		created, err := a.deps.Recipes.Create(dbc, []*types.Recipe{{
			Name:         in.Name,
			Category:     in.Category,
			Instructions: in.Instructions,
		}})
		if err != nil {
			return err
		}
		recipeID := created[0].ID

		links := make([]*types.RecipeIngredient, 0, len(in.Ingredients))
		for _, link := range in.Ingredients {
			links = append(links, &types.RecipeIngredient{
				RecipeID:     recipeID,
				IngredientID: link.IngredientID,
				Amount:       link.Amount,
				Unit:         link.Unit,
			})
		}
		if _, err := a.deps.RecipeIngredients.Create(dbc, links); err != nil {
			return storageError(op, fmt.Errorf("insert recipe ingredients: %w", err))
		}

		out.RecipeID = recipeID
		out.LinkCount = len(links)
		return nil
	})
	if err != nil {
		return domainagg.AddRecipeResult{}, err
	}
	return out, nil
}

func (a *recipeAggregate) UpdateRecipe(_ context.Context, _ domainagg.UpdateRecipeInput) (domainagg.UpdateRecipeResult, error) {
	const op = "Nutrition.Recipe.Update"
	return domainagg.UpdateRecipeResult{}, rejectWrite(a.deps.Base, op, notImplemented(op))
}

func (a *recipeAggregate) DeleteRecipe(ctx context.Context, in domainagg.DeleteRecipeInput) (domainagg.DeleteRecipeResult, error) {
	const op = "Nutrition.Recipe.Delete"
	var out domainagg.DeleteRecipeResult
	if !a.configured() {
		return out, domainagg.NewError(domainagg.CodeStorage, op, "recipe aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		refs, err := a.deps.RecipeMeals.CountByRecipeID(dbc, in.ID)
		if err != nil {
			return err
		}
		if err := RequireUnreferenced(refs, "recipe", in.ID, "meal plan links"); err != nil {
			return err
		}
		current, err := a.deps.Recipes.GetByID(dbc, in.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound(op, fmt.Sprintf("recipe not found: %d", in.ID))
		}
		linksRemoved, err := a.deps.RecipeIngredients.DeleteByRecipeID(dbc, in.ID)
		if err != nil {
			return err
		}
		if _, err := a.deps.Recipes.DeleteByID(dbc, in.ID); err != nil {
			return err
		}
		out.RecipeID = in.ID
		out.LinksRemoved = linksRemoved
		return nil
	})
	if err != nil {
		return domainagg.DeleteRecipeResult{}, err
	}
	return out, nil
}
