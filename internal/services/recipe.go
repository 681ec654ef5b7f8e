package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/ctxutil"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type RecipeService interface {
	Add(ctx context.Context, in domainagg.AddRecipeInput) (domainagg.AddRecipeResult, error)
	List(ctx context.Context) ([]*types.RecipeWithIngredients, error)
	Update(ctx context.Context, in domainagg.UpdateRecipeInput) (domainagg.UpdateRecipeResult, error)
	Delete(ctx context.Context, id int64) (domainagg.DeleteRecipeResult, error)
}

type recipeService struct {
	log                  *logger.Logger
	recipeRepo           repos.RecipeRepo
	recipeIngredientRepo repos.RecipeIngredientRepo
	recipeAgg            domainagg.RecipeAggregate
	fanout               int
}

func NewRecipeService(
	log *logger.Logger,
	recipeRepo repos.RecipeRepo,
	recipeIngredientRepo repos.RecipeIngredientRepo,
	recipeAgg domainagg.RecipeAggregate,
	fanout int,
) RecipeService {
	return &recipeService{
		log:                  log.With("service", "RecipeService"),
		recipeRepo:           recipeRepo,
		recipeIngredientRepo: recipeIngredientRepo,
		recipeAgg:            recipeAgg,
		fanout:               normalizeFanout(fanout),
	}
}

func (s *recipeService) Add(ctx context.Context, in domainagg.AddRecipeInput) (domainagg.AddRecipeResult, error) {
	out, err := s.recipeAgg.AddRecipe(ctx, in)
	if err != nil {
		return out, err
	}
	s.log.Info("recipe added", append(ctxutil.LogFields(ctx), "recipe_id", out.RecipeID, "links", out.LinkCount)...)
	return out, nil
}

// List returns every recipe with its ingredient links. Link reads run
// concurrently, at most s.fanout at a time; the first failure cancels the rest.
func (s *recipeService) List(ctx context.Context) ([]*types.RecipeWithIngredients, error) {
	const op = "Nutrition.Recipe.List"
	recipes, err := s.recipeRepo.List(dbctx.Background(ctx))
	if err != nil {
		return nil, readError(op, err)
	}

	out := make([]*types.RecipeWithIngredients, len(recipes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, recipe := range recipes {
		i, recipe := i, recipe
		g.Go(func() error {
			links, err := s.recipeIngredientRepo.ListByRecipeID(dbctx.Background(gctx), recipe.ID)
			if err != nil {
				return err
			}
			if links == nil {
				links = []*types.RecipeIngredient{}
			}
			out[i] = &types.RecipeWithIngredients{Recipe: *recipe, Ingredients: links}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("list recipes failed", append(ctxutil.LogFields(ctx), "error", err)...)
		return nil, readError(op, err)
	}
	return out, nil
}

func (s *recipeService) Update(ctx context.Context, in domainagg.UpdateRecipeInput) (domainagg.UpdateRecipeResult, error) {
	return s.recipeAgg.UpdateRecipe(ctx, in)
}

func (s *recipeService) Delete(ctx context.Context, id int64) (domainagg.DeleteRecipeResult, error) {
	out, err := s.recipeAgg.DeleteRecipe(ctx, domainagg.DeleteRecipeInput{ID: id})
	if err != nil {
		return out, err
	}
	s.log.Info("recipe deleted", append(ctxutil.LogFields(ctx), "recipe_id", id, "links_removed", out.LinksRemoved)...)
	return out, nil
}
