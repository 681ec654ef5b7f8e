package nutrition

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type RecipeMealRepo interface {
	Create(dbc dbctx.Context, rows []*types.RecipeMeal) ([]*types.RecipeMeal, error)
	ListByMealPlanID(dbc dbctx.Context, mealPlanID int64) ([]*types.RecipeMeal, error)
	ListByMealPlanIDs(dbc dbctx.Context, mealPlanIDs []int64) ([]*types.RecipeMeal, error)
	CountByRecipeID(dbc dbctx.Context, recipeID int64) (int64, error)
	DeleteByMealPlanID(dbc dbctx.Context, mealPlanID int64) (int64, error)
}

type recipeMealRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeMealRepo(db *gorm.DB, log *logger.Logger) RecipeMealRepo {
	return &recipeMealRepo{db: db, log: log.With("repo", "RecipeMealRepo")}
}

func (r *recipeMealRepo) tx(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *recipeMealRepo) Create(dbc dbctx.Context, rows []*types.RecipeMeal) ([]*types.RecipeMeal, error) {
	if len(rows) == 0 {
		return []*types.RecipeMeal{}, nil
	}
	if err := r.tx(dbc).
		Omit(clause.Associations).
		Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeMealRepo) ListByMealPlanID(dbc dbctx.Context, mealPlanID int64) ([]*types.RecipeMeal, error) {
	return r.ListByMealPlanIDs(dbc, []int64{mealPlanID})
}

func (r *recipeMealRepo) ListByMealPlanIDs(dbc dbctx.Context, mealPlanIDs []int64) ([]*types.RecipeMeal, error) {
	if len(mealPlanIDs) == 0 {
		return []*types.RecipeMeal{}, nil
	}
	var out []*types.RecipeMeal
	if err := r.tx(dbc).
		Model(&types.RecipeMeal{}).
		Where("meal_plan_id IN ?", mealPlanIDs).
		Order("meal_plan_id ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeMealRepo) CountByRecipeID(dbc dbctx.Context, recipeID int64) (int64, error) {
	var n int64
	if err := r.tx(dbc).
		Model(&types.RecipeMeal{}).
		Where("recipe_id = ?", recipeID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *recipeMealRepo) DeleteByMealPlanID(dbc dbctx.Context, mealPlanID int64) (int64, error) {
	res := r.tx(dbc).
		Where("meal_plan_id = ?", mealPlanID).
		Delete(&types.RecipeMeal{})
	return res.RowsAffected, res.Error
}
