package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/http/response"
	"github.com/yungbote/nutriplan-backend/internal/services"
)

type IngredientHandler struct {
	ingredients services.IngredientService
}

func NewIngredientHandler(ingredients services.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

type ingredientRequest struct {
	Name     string  `json:"name"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// POST /api/ingredients
func (h *IngredientHandler) Add(c *gin.Context) {
	var req ingredientRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.ingredients.Add(c.Request.Context(), domainagg.AddIngredientInput{
		Name:     req.Name,
		Proteins: req.Proteins,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	})
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusCreated, "Ingredient added successfully", out.IngredientID)
}

// GET /api/ingredients
func (h *IngredientHandler) List(c *gin.Context) {
	rows, err := h.ingredients.List(c.Request.Context())
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// PUT /api/ingredients/:id
func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req ingredientRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.ingredients.Update(c.Request.Context(), domainagg.UpdateIngredientInput{
		ID:       id,
		Name:     req.Name,
		Proteins: req.Proteins,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	}); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Ingredient updated successfully", id)
}

// DELETE /api/ingredients/:id
func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondMessage(c, http.StatusOK, "Ingredient deleted successfully", id)
}
