package nutrition

// RecipeMeal places a recipe in a meal plan on a given day and meal slot.
type RecipeMeal struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"-"`

	MealPlanID int64  `gorm:"column:meal_plan_id;not null;index" json:"meal_plan_id"`
	RecipeID   int64  `gorm:"column:recipe_id;not null;index" json:"recipe_id"`
	Day        string `gorm:"column:day;size:45;not null" json:"day"`
	MealType   string `gorm:"column:meal_type;size:45;not null" json:"meal_type"`

	MealPlan *MealPlan `gorm:"foreignKey:MealPlanID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe   *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (RecipeMeal) TableName() string { return "recipe_meal" }
