package services

import (
	"context"
	"errors"
	"sync"

	"github.com/yungbote/nutriplan-backend/internal/data/repos"
	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
)

type fakeIngredientAggregate struct {
	addCalls    int
	updateCalls int
	deleteCalls int
	lastAdd     domainagg.AddIngredientInput
	lastDelete  domainagg.DeleteIngredientInput
	err         error
}

func (f *fakeIngredientAggregate) Contract() domainagg.Contract {
	return domainagg.IngredientAggregateContract
}

func (f *fakeIngredientAggregate) AddIngredient(_ context.Context, in domainagg.AddIngredientInput) (domainagg.AddIngredientResult, error) {
	f.addCalls++
	f.lastAdd = in
	if f.err != nil {
		return domainagg.AddIngredientResult{}, f.err
	}
	return domainagg.AddIngredientResult{IngredientID: 1}, nil
}

func (f *fakeIngredientAggregate) UpdateIngredient(_ context.Context, in domainagg.UpdateIngredientInput) (domainagg.UpdateIngredientResult, error) {
	f.updateCalls++
	if f.err != nil {
		return domainagg.UpdateIngredientResult{}, f.err
	}
	return domainagg.UpdateIngredientResult{IngredientID: in.ID}, nil
}

func (f *fakeIngredientAggregate) DeleteIngredient(_ context.Context, in domainagg.DeleteIngredientInput) (domainagg.DeleteIngredientResult, error) {
	f.deleteCalls++
	f.lastDelete = in
	if f.err != nil {
		return domainagg.DeleteIngredientResult{}, f.err
	}
	return domainagg.DeleteIngredientResult{IngredientID: in.ID}, nil
}

type fakeRecipeAggregate struct {
	addCalls    int
	updateCalls int
	deleteCalls int
	lastDelete  domainagg.DeleteRecipeInput
}

func (f *fakeRecipeAggregate) Contract() domainagg.Contract {
	return domainagg.RecipeAggregateContract
}

func (f *fakeRecipeAggregate) AddRecipe(_ context.Context, in domainagg.AddRecipeInput) (domainagg.AddRecipeResult, error) {
	f.addCalls++
	return domainagg.AddRecipeResult{RecipeID: 7, LinkCount: len(in.Ingredients)}, nil
}

func (f *fakeRecipeAggregate) UpdateRecipe(_ context.Context, _ domainagg.UpdateRecipeInput) (domainagg.UpdateRecipeResult, error) {
	f.updateCalls++
	return domainagg.UpdateRecipeResult{}, domainagg.NewError(domainagg.CodeNotImplemented, "Nutrition.Recipe.Update", "not implemented", nil)
}

func (f *fakeRecipeAggregate) DeleteRecipe(_ context.Context, in domainagg.DeleteRecipeInput) (domainagg.DeleteRecipeResult, error) {
	f.deleteCalls++
	f.lastDelete = in
	return domainagg.DeleteRecipeResult{RecipeID: in.ID}, nil
}

type fakeIngredientRepo struct {
	repos.IngredientRepo
	rows []*types.Ingredient
	err  error
}

func (f *fakeIngredientRepo) List(dbctx.Context) ([]*types.Ingredient, error) {
	return f.rows, f.err
}

type fakeRecipeRepo struct {
	repos.RecipeRepo
	rows []*types.Recipe
}

func (f *fakeRecipeRepo) List(dbctx.Context) ([]*types.Recipe, error) {
	return f.rows, nil
}

// fakeRecipeIngredientRepo serves links from memory and tracks peak concurrency.
type fakeRecipeIngredientRepo struct {
	repos.RecipeIngredientRepo
	byRecipe map[int64][]*types.RecipeIngredient
	failFor  int64
	gate     chan struct{}

	mu       sync.Mutex
	inflight int
	peak     int
}

var errLinkRead = errors.New("link read failed")

func (f *fakeRecipeIngredientRepo) ListByRecipeID(dbc dbctx.Context, recipeID int64) ([]*types.RecipeIngredient, error) {
	f.mu.Lock()
	f.inflight++
	if f.inflight > f.peak {
		f.peak = f.inflight
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inflight--
		f.mu.Unlock()
	}()
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-dbc.Ctx.Done():
			return nil, dbc.Ctx.Err()
		}
	}
	if recipeID == f.failFor {
		return nil, errLinkRead
	}
	return f.byRecipe[recipeID], nil
}
