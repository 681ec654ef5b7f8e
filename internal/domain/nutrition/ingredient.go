package nutrition

import "time"

// Ingredient is a named food item with per-unit macronutrients.
// Rows referenced by a RecipeIngredient cannot be deleted.
type Ingredient struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name     string  `gorm:"column:name;size:45;not null;uniqueIndex:idx_ingredient_name" json:"name"`
	Proteins float64 `gorm:"column:proteins;not null" json:"proteins"`
	Carbs    float64 `gorm:"column:carbs;not null" json:"carbs"`
	Fats     float64 `gorm:"column:fats;not null" json:"fats"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Ingredient) TableName() string { return "ingredient" }
