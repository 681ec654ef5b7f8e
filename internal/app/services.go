package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/nutriplan-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/observability"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
	"github.com/yungbote/nutriplan-backend/internal/services"
)

type Aggregates struct {
	Ingredient domainagg.IngredientAggregate
	Recipe     domainagg.RecipeAggregate
	MealPlan   domainagg.MealPlanAggregate
}

type Services struct {
	Ingredient services.IngredientService
	Recipe     services.RecipeService
	MealPlan   services.MealPlanService
}

func wireAggregates(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, r Repos) Aggregates {
	log.Info("Wiring aggregates...")
	base := aggregates.BaseDeps{
		DB:    db,
		Log:   log,
		Hooks: aggregates.NewObservabilityHooks(metrics),
	}
	return Aggregates{
		Ingredient: aggregates.NewIngredientAggregate(aggregates.IngredientAggregateDeps{
			Base:              base,
			Ingredients:       r.Ingredient,
			RecipeIngredients: r.RecipeIngredient,
		}),
		Recipe: aggregates.NewRecipeAggregate(aggregates.RecipeAggregateDeps{
			Base:              base,
			Recipes:           r.Recipe,
			Ingredients:       r.Ingredient,
			RecipeIngredients: r.RecipeIngredient,
			RecipeMeals:       r.RecipeMeal,
		}),
		MealPlan: aggregates.NewMealPlanAggregate(aggregates.MealPlanAggregateDeps{
			Base:        base,
			MealPlans:   r.MealPlan,
			Recipes:     r.Recipe,
			RecipeMeals: r.RecipeMeal,
		}),
	}
}

func wireServices(log *logger.Logger, cfg Config, r Repos, aggs Aggregates) Services {
	log.Info("Wiring services...")
	return Services{
		Ingredient: services.NewIngredientService(log, r.Ingredient, aggs.Ingredient),
		Recipe:     services.NewRecipeService(log, r.Recipe, r.RecipeIngredient, aggs.Recipe, cfg.ListFanout),
		MealPlan:   services.NewMealPlanService(log, r.MealPlan, r.RecipeMeal, aggs.MealPlan, cfg.ListFanout),
	}
}
