package aggregates

import "context"

var IngredientAggregateContract = Contract{
	Name:             "Nutrition.IngredientAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns ingredient name uniqueness and the delete guard against recipe references.",
}

// IngredientAggregate owns ingredient write invariants.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodeDuplicateName, CodeNotFound, CodeInUse, CodeStorage.
type IngredientAggregate interface {
	Aggregate

	// AddIngredient inserts a new ingredient with a unique name.
	AddIngredient(ctx context.Context, in AddIngredientInput) (AddIngredientResult, error)

	// UpdateIngredient overwrites every field of an existing ingredient.
	UpdateIngredient(ctx context.Context, in UpdateIngredientInput) (UpdateIngredientResult, error)

	// DeleteIngredient removes an ingredient no recipe references.
	DeleteIngredient(ctx context.Context, in DeleteIngredientInput) (DeleteIngredientResult, error)
}

type AddIngredientInput struct {
	Name     string  `validate:"min=1,max=45"`
	Proteins float64 `validate:"gte=0"`
	Carbs    float64 `validate:"gte=0"`
	Fats     float64 `validate:"gte=0"`
}

type AddIngredientResult struct {
	IngredientID int64
}

type UpdateIngredientInput struct {
	ID       int64
	Name     string  `validate:"min=1,max=45"`
	Proteins float64 `validate:"gte=0"`
	Carbs    float64 `validate:"gte=0"`
	Fats     float64 `validate:"gte=0"`
}

type UpdateIngredientResult struct {
	IngredientID int64
}

type DeleteIngredientInput struct {
	ID int64
}

type DeleteIngredientResult struct {
	IngredientID int64
}
