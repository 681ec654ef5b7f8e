package services

import (
	"context"

	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/ctxutil"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type IngredientService interface {
	Add(ctx context.Context, in domainagg.AddIngredientInput) (domainagg.AddIngredientResult, error)
	List(ctx context.Context) ([]*types.Ingredient, error)
	Update(ctx context.Context, in domainagg.UpdateIngredientInput) (domainagg.UpdateIngredientResult, error)
	Delete(ctx context.Context, id int64) (domainagg.DeleteIngredientResult, error)
}

type ingredientService struct {
	log            *logger.Logger
	ingredientRepo repos.IngredientRepo
	ingredientAgg  domainagg.IngredientAggregate
}

func NewIngredientService(log *logger.Logger, ingredientRepo repos.IngredientRepo, ingredientAgg domainagg.IngredientAggregate) IngredientService {
	return &ingredientService{
		log:            log.With("service", "IngredientService"),
		ingredientRepo: ingredientRepo,
		ingredientAgg:  ingredientAgg,
	}
}

func (s *ingredientService) Add(ctx context.Context, in domainagg.AddIngredientInput) (domainagg.AddIngredientResult, error) {
	out, err := s.ingredientAgg.AddIngredient(ctx, in)
	if err != nil {
		return out, err
	}
	s.log.Info("ingredient added", append(ctxutil.LogFields(ctx), "ingredient_id", out.IngredientID, "name", in.Name)...)
	return out, nil
}

func (s *ingredientService) List(ctx context.Context) ([]*types.Ingredient, error) {
	const op = "Nutrition.Ingredient.List"
	rows, err := s.ingredientRepo.List(dbctx.Background(ctx))
	if err != nil {
		s.log.Error("list ingredients failed", append(ctxutil.LogFields(ctx), "error", err)...)
		return nil, readError(op, err)
	}
	if rows == nil {
		rows = []*types.Ingredient{}
	}
	return rows, nil
}

func (s *ingredientService) Update(ctx context.Context, in domainagg.UpdateIngredientInput) (domainagg.UpdateIngredientResult, error) {
	out, err := s.ingredientAgg.UpdateIngredient(ctx, in)
	if err != nil {
		return out, err
	}
	s.log.Info("ingredient updated", append(ctxutil.LogFields(ctx), "ingredient_id", out.IngredientID)...)
	return out, nil
}

func (s *ingredientService) Delete(ctx context.Context, id int64) (domainagg.DeleteIngredientResult, error) {
	out, err := s.ingredientAgg.DeleteIngredient(ctx, domainagg.DeleteIngredientInput{ID: id})
	if err != nil {
		return out, err
	}
	s.log.Info("ingredient deleted", append(ctxutil.LogFields(ctx), "ingredient_id", id)...)
	return out, nil
}
