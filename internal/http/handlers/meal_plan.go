package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/http/response"
	"github.com/yungbote/nutriplan-backend/internal/services"
)

type MealPlanHandler struct {
	mealPlans services.MealPlanService
}

func NewMealPlanHandler(mealPlans services.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlans: mealPlans}
}

type recipeMealRequest struct {
	RecipeID int64  `json:"recipe_id"`
	Day      string `json:"day"`
	MealType string `json:"meal_type"`
}

type mealPlanRequest struct {
	Name     string              `json:"name"`
	Category string              `json:"category"`
	Recipes  []recipeMealRequest `json:"recipes"`
}

func (r mealPlanRequest) links() []domainagg.RecipeMealInput {
	out := make([]domainagg.RecipeMealInput, 0, len(r.Recipes))
	for _, link := range r.Recipes {
		out = append(out, domainagg.RecipeMealInput{
			RecipeID: link.RecipeID,
			Day:      link.Day,
			MealType: link.MealType,
		})
	}
	return out
}

// POST /api/meal-plans
func (h *MealPlanHandler) Add(c *gin.Context) {
	var req mealPlanRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.mealPlans.Add(c.Request.Context(), domainagg.AddMealPlanInput{
		Name:     req.Name,
		Category: req.Category,
		Recipes:  req.links(),
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusCreated, "Meal plan added successfully", out.MealPlanID)
}

// GET /api/meal-plans
func (h *MealPlanHandler) List(c *gin.Context) {
	rows, err := h.mealPlans.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// PUT /api/meal-plans/:id
func (h *MealPlanHandler) Update(c *gin.Context) {
	id := pathID(c)
	if _, err := h.mealPlans.Update(c.Request.Context(), domainagg.UpdateMealPlanInput{ID: id}); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Meal plan updated successfully", id)
}

// DELETE /api/meal-plans/:id
func (h *MealPlanHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.mealPlans.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Meal plan deleted successfully", id)
}
