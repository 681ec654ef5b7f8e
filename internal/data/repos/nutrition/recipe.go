package nutrition

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type RecipeRepo interface {
	Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error)
	List(dbc dbctx.Context) ([]*types.Recipe, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Recipe, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Recipe, error)
	ExistsByName(dbc dbctx.Context, name string) (bool, error)
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, log *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: log.With("repo", "RecipeRepo")}
}

func (r *recipeRepo) tx(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *recipeRepo) Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error) {
	if len(rows) == 0 {
		return []*types.Recipe{}, nil
	}
	if err := r.tx(dbc).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepo) List(dbc dbctx.Context) ([]*types.Recipe, error) {
	var out []*types.Recipe
	if err := r.tx(dbc).
		Model(&types.Recipe{}).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) GetByID(dbc dbctx.Context, id int64) (*types.Recipe, error) {
	var row types.Recipe
	err := r.tx(dbc).
		Model(&types.Recipe{}).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *recipeRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Recipe, error) {
	if len(ids) == 0 {
		return []*types.Recipe{}, nil
	}
	var out []*types.Recipe
	if err := r.tx(dbc).
		Model(&types.Recipe{}).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) ExistsByName(dbc dbctx.Context, name string) (bool, error) {
	var n int64
	if err := r.tx(dbc).
		Model(&types.Recipe{}).
		Where("name = ?", name).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *recipeRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := r.tx(dbc).
		Where("id = ?", id).
		Delete(&types.Recipe{})
	return res.RowsAffected, res.Error
}
