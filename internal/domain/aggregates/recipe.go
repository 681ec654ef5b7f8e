package aggregates

import "context"

var RecipeAggregateContract = Contract{
	Name:             "Nutrition.RecipeAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns recipe + ingredient link creation as one unit and the delete guard against meal plan references.",
}

// RecipeAggregate owns recipe write invariants.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodeDuplicateName, CodeNotFound, CodeInUse, CodeNotImplemented, CodeStorage.
type RecipeAggregate interface {
	Aggregate

	// AddRecipe inserts a recipe and all of its ingredient links atomically.
	// Every referenced ingredient must exist.
	AddRecipe(ctx context.Context, in AddRecipeInput) (AddRecipeResult, error)

	// UpdateRecipe is not supported and never touches the store.
	UpdateRecipe(ctx context.Context, in UpdateRecipeInput) (UpdateRecipeResult, error)

	// DeleteRecipe removes a recipe no meal plan references, together with its ingredient links.
	DeleteRecipe(ctx context.Context, in DeleteRecipeInput) (DeleteRecipeResult, error)
}

type RecipeIngredientInput struct {
	IngredientID int64
	Amount       float64 `validate:"gte=0"`
	Unit         string  `validate:"max=45"`
}

type AddRecipeInput struct {
	Name         string                  `validate:"min=1,max=45"`
	Category     string                  `validate:"min=1,max=45"`
	Instructions string                  `validate:"min=1,max=1000"`
	Ingredients  []RecipeIngredientInput `validate:"dive"`
}

type AddRecipeResult struct {
	RecipeID  int64
	LinkCount int
}

type UpdateRecipeInput struct {
	ID           int64
	Name         string
	Category     string
	Instructions string
	Ingredients  []RecipeIngredientInput
}

type UpdateRecipeResult struct {
	RecipeID int64
}

type DeleteRecipeInput struct {
	ID int64
}

type DeleteRecipeResult struct {
	RecipeID     int64
	LinksRemoved int64
}
