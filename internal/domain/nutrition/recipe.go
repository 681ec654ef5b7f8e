package nutrition

import "time"

type Recipe struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name         string `gorm:"column:name;size:45;not null;uniqueIndex:idx_recipe_name" json:"name"`
	Category     string `gorm:"column:category;size:45;not null" json:"category"`
	Instructions string `gorm:"column:instructions;size:1000;not null" json:"instructions"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (Recipe) TableName() string { return "recipe" }

// RecipeWithIngredients is the list view of a recipe and its ingredient links.
type RecipeWithIngredients struct {
	Recipe
	Ingredients []*RecipeIngredient `json:"ingredients"`
}
