package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/nutriplan-backend/internal/http"
	httpH "github.com/yungbote/nutriplan-backend/internal/http/handlers"
	"github.com/yungbote/nutriplan-backend/internal/observability"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Ingredient *httpH.IngredientHandler
	Recipe     *httpH.RecipeHandler
	MealPlan   *httpH.MealPlanHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(db),
		Ingredient: httpH.NewIngredientHandler(services.Ingredient),
		Recipe:     httpH.NewRecipeHandler(services.Recipe),
		MealPlan:   httpH.NewMealPlanHandler(services.MealPlan),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers) *http.Server {
	tracingService := ""
	if cfg.Otel.Enabled {
		tracingService = cfg.Otel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:               log,
		Metrics:           metrics,
		AllowedOrigins:    cfg.AllowedOrigins,
		TracingService:    tracingService,
		HealthHandler:     handlers.Health,
		IngredientHandler: handlers.Ingredient,
		RecipeHandler:     handlers.Recipe,
		MealPlanHandler:   handlers.MealPlan,
	})
}
