package nutrition

// RecipeIngredient links a recipe to an ingredient with an amount and unit.
// Owned by the recipe: removed with it, and created in the same transaction.
// The referenced ingredient is protected from deletion.
type RecipeIngredient struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"-"`

	RecipeID     int64   `gorm:"column:recipe_id;not null;index" json:"recipe_id"`
	IngredientID int64   `gorm:"column:ingredient_id;not null;index" json:"ingredient_id"`
	Amount       float64 `gorm:"column:amount;not null" json:"amount"`
	Unit         string  `gorm:"column:unit;size:45;not null" json:"unit"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredient" }
