package nutrition

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type IngredientRepo interface {
	Create(dbc dbctx.Context, rows []*types.Ingredient) ([]*types.Ingredient, error)
	List(dbc dbctx.Context) ([]*types.Ingredient, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Ingredient, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Ingredient, error)
	ExistsByName(dbc dbctx.Context, name string) (bool, error)
	ExistsByNameExcludingID(dbc dbctx.Context, name string, id int64) (bool, error)
	UpdateFields(dbc dbctx.Context, id int64, updates map[string]interface{}) (int64, error)
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, log *logger.Logger) IngredientRepo {
	return &ingredientRepo{db: db, log: log.With("repo", "IngredientRepo")}
}

func (r *ingredientRepo) tx(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *ingredientRepo) Create(dbc dbctx.Context, rows []*types.Ingredient) ([]*types.Ingredient, error) {
	if len(rows) == 0 {
		return []*types.Ingredient{}, nil
	}
	if err := r.tx(dbc).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ingredientRepo) List(dbc dbctx.Context) ([]*types.Ingredient, error) {
	var out []*types.Ingredient
	if err := r.tx(dbc).
		Model(&types.Ingredient{}).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns nil, nil when no row has the id.
func (r *ingredientRepo) GetByID(dbc dbctx.Context, id int64) (*types.Ingredient, error) {
	var row types.Ingredient
	err := r.tx(dbc).
		Model(&types.Ingredient{}).
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

func (r *ingredientRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Ingredient, error) {
	if len(ids) == 0 {
		return []*types.Ingredient{}, nil
	}
	var out []*types.Ingredient
	if err := r.tx(dbc).
		Model(&types.Ingredient{}).
		Where("id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ingredientRepo) ExistsByName(dbc dbctx.Context, name string) (bool, error) {
	var n int64
	if err := r.tx(dbc).
		Model(&types.Ingredient{}).
		Where("name = ?", name).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ingredientRepo) ExistsByNameExcludingID(dbc dbctx.Context, name string, id int64) (bool, error) {
	var n int64
	if err := r.tx(dbc).
		Model(&types.Ingredient{}).
		Where("name = ? AND id <> ?", name, id).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ingredientRepo) UpdateFields(dbc dbctx.Context, id int64, updates map[string]interface{}) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}
	res := r.tx(dbc).
		Model(&types.Ingredient{}).
		Where("id = ?", id).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ingredientRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := r.tx(dbc).
		Where("id = ?", id).
		Delete(&types.Ingredient{})
	return res.RowsAffected, res.Error
}
