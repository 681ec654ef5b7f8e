package aggregates

import (
	"context"
	"fmt"

	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
)

type IngredientAggregateDeps struct {
	Base BaseDeps

	Ingredients       repos.IngredientRepo
	RecipeIngredients repos.RecipeIngredientRepo
}

type ingredientAggregate struct {
	deps IngredientAggregateDeps
}

func NewIngredientAggregate(deps IngredientAggregateDeps) domainagg.IngredientAggregate {
	deps.Base = deps.Base.withDefaults()
	return &ingredientAggregate{deps: deps}
}

func (a *ingredientAggregate) Contract() domainagg.Contract {
	return domainagg.IngredientAggregateContract
}

func (a *ingredientAggregate) AddIngredient(ctx context.Context, in domainagg.AddIngredientInput) (domainagg.AddIngredientResult, error) {
	const op = "Nutrition.Ingredient.Add"
	var out domainagg.AddIngredientResult
	if err := validateInput(in); err != nil {
		return out, rejectWrite(a.deps.Base, op, err)
	}
	if a.deps.Ingredients == nil {
		return out, domainagg.NewError(domainagg.CodeStorage, op, "ingredient aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		exists, err := a.deps.Ingredients.ExistsByName(dbc, in.Name)
		if err != nil {
			return err
		}
		if err := RequireNameAvailable(exists, "ingredient", in.Name); err != nil {
			return err
		}
		rows, err := a.deps.Ingredients.Create(dbc, []*types.Ingredient{{
			Name:     in.Name,
			Proteins: in.Proteins,
			Carbs:    in.Carbs,
			Fats:     in.Fats,
		}})
		if err != nil {
			return err
		}
		out.IngredientID = rows[0].ID
		return nil
	})
	if err != nil {
		return domainagg.AddIngredientResult{}, err
	}
	return out, nil
}

func (a *ingredientAggregate) UpdateIngredient(ctx context.Context, in domainagg.UpdateIngredientInput) (domainagg.UpdateIngredientResult, error) {
	const op = "Nutrition.Ingredient.Update"
	var out domainagg.UpdateIngredientResult
	if err := validateInput(in); err != nil {
		return out, rejectWrite(a.deps.Base, op, err)
	}
	if a.deps.Ingredients == nil {
		return out, domainagg.NewError(domainagg.CodeStorage, op, "ingredient aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		taken, err := a.deps.Ingredients.ExistsByNameExcludingID(dbc, in.Name, in.ID)
		if err != nil {
			return err
		}
		if err := RequireNameAvailable(taken, "ingredient", in.Name); err != nil {
			return err
		}
		current, err := a.deps.Ingredients.GetByID(dbc, in.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound(op, fmt.Sprintf("ingredient not found: %d", in.ID))
		}
		if _, err := a.deps.Ingredients.UpdateFields(dbc, in.ID, map[string]interface{}{
			"name":     in.Name,
			"proteins": in.Proteins,
			"carbs":    in.Carbs,
			"fats":     in.Fats,
		}); err != nil {
			return err
		}
		out.IngredientID = in.ID
		return nil
	})
	return out, err
}

func (a *ingredientAggregate) DeleteIngredient(ctx context.Context, in domainagg.DeleteIngredientInput) (domainagg.DeleteIngredientResult, error) {
	const op = "Nutrition.Ingredient.Delete"
	var out domainagg.DeleteIngredientResult
	if a.deps.Ingredients == nil || a.deps.RecipeIngredients == nil {
		return out, domainagg.NewError(domainagg.CodeStorage, op, "ingredient aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		refs, err := a.deps.RecipeIngredients.CountByIngredientID(dbc, in.ID)
		if err != nil {
			return err
		}
		if err := RequireUnreferenced(refs, "ingredient", in.ID, "recipe links"); err != nil {
			return err
		}
		removed, err := a.deps.Ingredients.DeleteByID(dbc, in.ID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return notFound(op, fmt.Sprintf("ingredient not found: %d", in.ID))
		}
		out.IngredientID = in.ID
		return nil
	})
	return out, err
}
