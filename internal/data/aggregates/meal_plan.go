package aggregates

import (
	"context"
	"fmt"

	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
)

type MealPlanAggregateDeps struct {
	Base BaseDeps

	MealPlans   repos.MealPlanRepo
	Recipes     repos.RecipeRepo
	RecipeMeals repos.RecipeMealRepo
}

type mealPlanAggregate struct {
	deps MealPlanAggregateDeps
}

func NewMealPlanAggregate(deps MealPlanAggregateDeps) domainagg.MealPlanAggregate {
	deps.Base = deps.Base.withDefaults()
	return &mealPlanAggregate{deps: deps}
}

func (a *mealPlanAggregate) Contract() domainagg.Contract {
	return domainagg.MealPlanAggregateContract
}

func (a *mealPlanAggregate) AddMealPlan(ctx context.Context, in domainagg.AddMealPlanInput) (domainagg.AddMealPlanResult, error) {
	const op = "Nutrition.MealPlan.Add"
	var out domainagg.AddMealPlanResult
	if err := validateInput(in); err != nil {
		return out, rejectWrite(a.deps.Base, op, err)
	}
	if a.deps.MealPlans == nil || a.deps.Recipes == nil || a.deps.RecipeMeals == nil {
		return out, domainagg.NewError(domainagg.CodeStorage, op, "meal plan aggregate repos not configured", nil)
	}

	wantIDs := make([]int64, 0, len(in.Recipes))
	for _, link := range in.Recipes {
		wantIDs = append(wantIDs, link.RecipeID)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		exists, err := a.deps.MealPlans.ExistsByName(dbc, in.Name)
		if err != nil {
			return err
		}
		if err := RequireNameAvailable(exists, "meal plan", in.Name); err != nil {
			return err
		}

		found, err := a.deps.Recipes.GetByIDs(dbc, uniqueIDs(wantIDs))
		if err != nil {
			return err
		}
		foundIDs := make([]int64, 0, len(found))
		for _, row := range found {
			foundIDs = append(foundIDs, row.ID)
		}
		if missing, ok := FirstMissingID(wantIDs, foundIDs); ok {
			return notFound(op, fmt.Sprintf("recipe not found: %d", missing))
		}

		created, err := a.deps.MealPlans.Create(dbc, []*types.MealPlan{{
			Name:     in.Name,
			Category: in.Category,
		}})
		if err != nil {
			return err
		}
		planID := created[0].ID

		links := make([]*types.RecipeMeal, 0, len(in.Recipes))
		for _, link := range in.Recipes {
			links = append(links, &types.RecipeMeal{
				MealPlanID: planID,
				RecipeID:   link.RecipeID,
				Day:        link.Day,
				MealType:   link.MealType,
			})
		}
		if _, err := a.deps.RecipeMeals.Create(dbc, links); err != nil {
			return storageError(op, fmt.Errorf("insert recipe meals: %w", err))
		}

		out.MealPlanID = planID
		out.LinkCount = len(links)
		return nil
	})
	if err != nil {
		return domainagg.AddMealPlanResult{}, err
	}
	return out, nil
}

func (a *mealPlanAggregate) UpdateMealPlan(_ context.Context, _ domainagg.UpdateMealPlanInput) (domainagg.UpdateMealPlanResult, error) {
	const op = "Nutrition.MealPlan.Update"
	return domainagg.UpdateMealPlanResult{}, rejectWrite(a.deps.Base, op, notImplemented(op))
}

func (a *mealPlanAggregate) DeleteMealPlan(ctx context.Context, in domainagg.DeleteMealPlanInput) (domainagg.DeleteMealPlanResult, error) {
	const op = "Nutrition.MealPlan.Delete"
	var out domainagg.DeleteMealPlanResult
	if a.deps.MealPlans == nil || a.deps.RecipeMeals == nil {
		return out, domainagg.NewError(domainagg.CodeStorage, op, "meal plan aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		current, err := a.deps.MealPlans.GetByID(dbc, in.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return notFound(op, fmt.Sprintf("meal plan not found: %d", in.ID))
		}
		linksRemoved, err := a.deps.RecipeMeals.DeleteByMealPlanID(dbc, in.ID)
		if err != nil {
			return err
		}
		if _, err := a.deps.MealPlans.DeleteByID(dbc, in.ID); err != nil {
			return err
		}
		out.MealPlanID = in.ID
		out.LinksRemoved = linksRemoved
		return nil
	})
	if err != nil {
		return domainagg.DeleteMealPlanResult{}, err
	}
	return out, nil
}
