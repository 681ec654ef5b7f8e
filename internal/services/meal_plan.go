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

type MealPlanService interface {
	Add(ctx context.Context, in domainagg.AddMealPlanInput) (domainagg.AddMealPlanResult, error)
	List(ctx context.Context) ([]*types.MealPlanWithRecipes, error)
	Update(ctx context.Context, in domainagg.UpdateMealPlanInput) (domainagg.UpdateMealPlanResult, error)
	Delete(ctx context.Context, id int64) (domainagg.DeleteMealPlanResult, error)
}

type mealPlanService struct {
	log            *logger.Logger
	mealPlanRepo   repos.MealPlanRepo
	recipeMealRepo repos.RecipeMealRepo
	mealPlanAgg    domainagg.MealPlanAggregate
	fanout         int
}

func NewMealPlanService(
	log *logger.Logger,
	mealPlanRepo repos.MealPlanRepo,
	recipeMealRepo repos.RecipeMealRepo,
	mealPlanAgg domainagg.MealPlanAggregate,
	fanout int,
) MealPlanService {
	return &mealPlanService{
		log:            log.With("service", "MealPlanService"),
		mealPlanRepo:   mealPlanRepo,
		recipeMealRepo: recipeMealRepo,
		mealPlanAgg:    mealPlanAgg,
		fanout:         normalizeFanout(fanout),
	}
}

func (s *mealPlanService) Add(ctx context.Context, in domainagg.AddMealPlanInput) (domainagg.AddMealPlanResult, error) {
	out, err := s.mealPlanAgg.AddMealPlan(ctx, in)
	if err != nil {
		return out, err
	}
	s.log.Info("meal plan added", append(ctxutil.LogFields(ctx), "meal_plan_id", out.MealPlanID, "links", out.LinkCount)...)
	return out, nil
}

func (s *mealPlanService) List(ctx context.Context) ([]*types.MealPlanWithRecipes, error) {
	const op = "Nutrition.MealPlan.List"
	plans, err := s.mealPlanRepo.List(dbctx.Background(ctx))
	if err != nil {
		return nil, readError(op, err)
	}

	out := make([]*types.MealPlanWithRecipes, len(plans))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)
	for i, plan := range plans {
		i, plan := i, plan
		g.Go(func() error {
			links, err := s.recipeMealRepo.ListByMealPlanID(dbctx.Background(gctx), plan.ID)
			if err != nil {
				return err
			}
			if links == nil {
				links = []*types.RecipeMeal{}
			}
			out[i] = &types.MealPlanWithRecipes{MealPlan: *plan, Recipes: links}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("list meal plans failed", append(ctxutil.LogFields(ctx), "error", err)...)
		return nil, readError(op, err)
	}
	return out, nil
}

func (s *mealPlanService) Update(ctx context.Context, in domainagg.UpdateMealPlanInput) (domainagg.UpdateMealPlanResult, error) {
	return s.mealPlanAgg.UpdateMealPlan(ctx, in)
}

func (s *mealPlanService) Delete(ctx context.Context, id int64) (domainagg.DeleteMealPlanResult, error) {
	out, err := s.mealPlanAgg.DeleteMealPlan(ctx, domainagg.DeleteMealPlanInput{ID: id})
	if err != nil {
		return out, err
	}
	s.log.Info("meal plan deleted", append(ctxutil.LogFields(ctx), "meal_plan_id", id, "links_removed", out.LinksRemoved)...)
	return out, nil
}
