package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/http/response"
	"github.com/yungbote/nutriplan-backend/internal/services"
)

type RecipeHandler struct {
	recipes services.RecipeService
}

func NewRecipeHandler(recipes services.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

type recipeIngredientRequest struct {
	IngredientID int64   `json:"ingredient_id"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
}

type recipeRequest struct {
	Name         string                    `json:"name"`
	Category     string                    `json:"category"`
	Instructions string                    `json:"instructions"`
	Ingredients  []recipeIngredientRequest `json:"ingredients"`
}

func (r recipeRequest) links() []domainagg.RecipeIngredientInput {
	out := make([]domainagg.RecipeIngredientInput, 0, len(r.Ingredients))
	for _, link := range r.Ingredients {
		out = append(out, domainagg.RecipeIngredientInput{
			IngredientID: link.IngredientID,
			Amount:       link.Amount,
			Unit:         link.Unit,
		})
	}
	return out
}

// POST /api/recipes
func (h *RecipeHandler) Add(c *gin.Context) {
	var req recipeRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.recipes.Add(c.Request.Context(), domainagg.AddRecipeInput{
		Name:         req.Name,
		Category:     req.Category,
		Instructions: req.Instructions,
		Ingredients:  req.links(),
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusCreated, "Recipe added successfully", out.RecipeID)
}

// GET /api/recipes
func (h *RecipeHandler) List(c *gin.Context) {
	rows, err := h.recipes.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// PUT /api/recipes/:id
// Recipes cannot be updated; the body is never read so every call answers 501.
func (h *RecipeHandler) Update(c *gin.Context) {
	id := pathID(c)
	if _, err := h.recipes.Update(c.Request.Context(), domainagg.UpdateRecipeInput{ID: id}); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Recipe updated successfully", id)
}

// DELETE /api/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Recipe deleted successfully", id)
}
