package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/nutriplan-backend/internal/http/handlers"
	httpMW "github.com/yungbote/nutriplan-backend/internal/http/middleware"
	"github.com/yungbote/nutriplan-backend/internal/observability"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	AllowedOrigins []string
	// TracingService names the otelgin server spans; empty disables them.
	TracingService string

	IngredientHandler *httpH.IngredientHandler
	RecipeHandler     *httpH.RecipeHandler
	MealPlanHandler   *httpH.MealPlanHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Ingredients
		if cfg.IngredientHandler != nil {
			api.POST("/ingredients", cfg.IngredientHandler.Add)
			api.GET("/ingredients", cfg.IngredientHandler.List)
			api.PUT("/ingredients/:id", cfg.IngredientHandler.Update)
			api.DELETE("/ingredients/:id", cfg.IngredientHandler.Delete)
		}

		// Recipes
		if cfg.RecipeHandler != nil {
			api.POST("/recipes", cfg.RecipeHandler.Add)
			api.GET("/recipes", cfg.RecipeHandler.List)
			api.PUT("/recipes/:id", cfg.RecipeHandler.Update)
			api.DELETE("/recipes/:id", cfg.RecipeHandler.Delete)
		}

		// Meal plans
		if cfg.MealPlanHandler != nil {
			api.POST("/meal-plans", cfg.MealPlanHandler.Add)
			api.GET("/meal-plans", cfg.MealPlanHandler.List)
			api.PUT("/meal-plans/:id", cfg.MealPlanHandler.Update)
			api.DELETE("/meal-plans/:id", cfg.MealPlanHandler.Delete)
		}
	}

	return r
}
