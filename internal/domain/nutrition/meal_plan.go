package nutrition

import "time"

type MealPlan struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name     string `gorm:"column:name;size:45;not null;uniqueIndex:idx_meal_plan_name" json:"name"`
	Category string `gorm:"column:category;size:45;not null" json:"category"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (MealPlan) TableName() string { return "meal_plan" }

// MealPlanWithRecipes is the list view of a meal plan and its recipe links.
type MealPlanWithRecipes struct {
	MealPlan
	Recipes []*RecipeMeal `json:"recipes"`
}
