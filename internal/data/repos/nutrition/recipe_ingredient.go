package nutrition

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type RecipeIngredientRepo interface {
	Create(dbc dbctx.Context, rows []*types.RecipeIngredient) ([]*types.RecipeIngredient, error)
	ListByRecipeID(dbc dbctx.Context, recipeID int64) ([]*types.RecipeIngredient, error)
	ListByRecipeIDs(dbc dbctx.Context, recipeIDs []int64) ([]*types.RecipeIngredient, error)
	CountByIngredientID(dbc dbctx.Context, ingredientID int64) (int64, error)
	DeleteByRecipeID(dbc dbctx.Context, recipeID int64) (int64, error)
}

type recipeIngredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeIngredientRepo(db *gorm.DB, log *logger.Logger) RecipeIngredientRepo {
	return &recipeIngredientRepo{db: db, log: log.With("repo", "RecipeIngredientRepo")}
}

// Create inserts every row in one statement; rows keep submission order.
func (r *recipeIngredientRepo) tx(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *recipeIngredientRepo) Create(dbc dbctx.Context, rows []*types.RecipeIngredient) ([]*types.RecipeIngredient, error) {
	if len(rows) == 0 {
		return []*types.RecipeIngredient{}, nil
	}
	if err := r.tx(dbc).
		Omit(clause.Associations).
		Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeIngredientRepo) ListByRecipeID(dbc dbctx.Context, recipeID int64) ([]*types.RecipeIngredient, error) {
	return r.ListByRecipeIDs(dbc, []int64{recipeID})
}

func (r *recipeIngredientRepo) ListByRecipeIDs(dbc dbctx.Context, recipeIDs []int64) ([]*types.RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return []*types.RecipeIngredient{}, nil
	}
	var out []*types.RecipeIngredient
	if err := r.tx(dbc).
		Model(&types.RecipeIngredient{}).
		Where("recipe_id IN ?", recipeIDs).
		Order("recipe_id ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeIngredientRepo) CountByIngredientID(dbc dbctx.Context, ingredientID int64) (int64, error) {
	var n int64
	if err := r.tx(dbc).
		Model(&types.RecipeIngredient{}).
		Where("ingredient_id = ?", ingredientID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *recipeIngredientRepo) DeleteByRecipeID(dbc dbctx.Context, recipeID int64) (int64, error) {
	res := r.tx(dbc).
		Where("recipe_id = ?", recipeID).
		Delete(&types.RecipeIngredient{})
	return res.RowsAffected, res.Error
}
