package aggregates

import "context"

var MealPlanAggregateContract = Contract{
	Name:             "Nutrition.MealPlanAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns meal plan + recipe link creation and removal as single units.",
}

// MealPlanAggregate owns meal plan write invariants.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodeDuplicateName, CodeNotFound, CodeNotImplemented, CodeStorage.
type MealPlanAggregate interface {
	Aggregate

	// AddMealPlan inserts a meal plan and all of its recipe links atomically.
	// Every referenced recipe must exist.
	AddMealPlan(ctx context.Context, in AddMealPlanInput) (AddMealPlanResult, error)

	// UpdateMealPlan is not supported and never touches the store.
	UpdateMealPlan(ctx context.Context, in UpdateMealPlanInput) (UpdateMealPlanResult, error)

	// DeleteMealPlan removes a meal plan and its recipe links in one transaction.
	DeleteMealPlan(ctx context.Context, in DeleteMealPlanInput) (DeleteMealPlanResult, error)
}

type RecipeMealInput struct {
	RecipeID int64
	Day      string `validate:"max=45"`
	MealType string `validate:"max=45"`
}

type AddMealPlanInput struct {
	Name     string            `validate:"min=1,max=45"`
	Category string            `validate:"min=1,max=45"`
	Recipes  []RecipeMealInput `validate:"dive"`
}

type AddMealPlanResult struct {
	MealPlanID int64
	LinkCount  int
}

type UpdateMealPlanInput struct {
	ID       int64
	Name     string
	Category string
	Recipes  []RecipeMealInput
}

type UpdateMealPlanResult struct {
	MealPlanID int64
}

type DeleteMealPlanInput struct {
	ID int64
}

type DeleteMealPlanResult struct {
	MealPlanID   int64
	LinksRemoved int64
}
