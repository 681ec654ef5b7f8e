package services

import (
	"context"
	"errors"
	"testing"
	"time"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
	domainagg "github.com/yungbote/nutriplan-backend/internal/domain/aggregates"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

func recipesFixture(n int) []*types.Recipe {
	out := make([]*types.Recipe, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &types.Recipe{ID: int64(i), Name: "recipe"})
	}
	return out
}

func TestRecipeServiceListAssemblesViewsInOrder(t *testing.T) {
	links := &fakeRecipeIngredientRepo{byRecipe: map[int64][]*types.RecipeIngredient{
		1: {{ID: 10, RecipeID: 1, IngredientID: 3, Amount: 500, Unit: "g"}},
	}}
	svc := NewRecipeService(logger.Nop(), &fakeRecipeRepo{rows: recipesFixture(3)}, links, &fakeRecipeAggregate{}, 2)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len: want=3 got=%d", len(got))
	}
	for i, view := range got {
		if view.ID != int64(i+1) {
			t.Fatalf("order: index %d has id %d", i, view.ID)
		}
		if view.Ingredients == nil {
			t.Fatalf("recipe %d: ingredients should be empty, not nil", view.ID)
		}
	}
	if len(got[0].Ingredients) != 1 || got[0].Ingredients[0].Amount != 500 || got[0].Ingredients[0].Unit != "g" {
		t.Fatalf("recipe 1 links: %+v", got[0].Ingredients)
	}
}

func TestRecipeServiceListBoundsFanout(t *testing.T) {
	gate := make(chan struct{})
	links := &fakeRecipeIngredientRepo{byRecipe: map[int64][]*types.RecipeIngredient{}, gate: gate}
	svc := NewRecipeService(logger.Nop(), &fakeRecipeRepo{rows: recipesFixture(8)}, links, &fakeRecipeAggregate{}, 3)

	done := make(chan error, 1)
	go func() {
		_, err := svc.List(context.Background())
		done <- err
	}()
	time.Sleep(50 * time.Millisecond)
	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("List: %v", err)
	}
	links.mu.Lock()
	peak := links.peak
	links.mu.Unlock()
	if peak > 3 {
		t.Fatalf("peak concurrency: want<=3 got=%d", peak)
	}
}

func TestRecipeServiceListFailsAsStorage(t *testing.T) {
	links := &fakeRecipeIngredientRepo{byRecipe: map[int64][]*types.RecipeIngredient{}, failFor: 2}
	svc := NewRecipeService(logger.Nop(), &fakeRecipeRepo{rows: recipesFixture(4)}, links, &fakeRecipeAggregate{}, 1)

	_, err := svc.List(context.Background())
	if !domainagg.IsCode(err, domainagg.CodeStorage) {
		t.Fatalf("want storage got=%v", err)
	}
	if !errors.Is(err, errLinkRead) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestRecipeServiceUpdateIsNotImplemented(t *testing.T) {
	fakeAgg := &fakeRecipeAggregate{}
	svc := NewRecipeService(logger.Nop(), &fakeRecipeRepo{}, &fakeRecipeIngredientRepo{}, fakeAgg, 0)

	_, err := svc.Update(context.Background(), domainagg.UpdateRecipeInput{ID: 1})
	if !domainagg.IsCode(err, domainagg.CodeNotImplemented) {
		t.Fatalf("want not_implemented got=%v", err)
	}
	if _, err := svc.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if fakeAgg.lastDelete.ID != 9 {
		t.Fatalf("delete id: want=9 got=%d", fakeAgg.lastDelete.ID)
	}
}
