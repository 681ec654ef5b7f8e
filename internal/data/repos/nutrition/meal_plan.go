package nutrition

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/nutriplan-backend/internal/domain"
	"github.com/yungbote/nutriplan-backend/internal/platform/dbctx"
	"github.com/yungbote/nutriplan-backend/internal/platform/logger"
)

type MealPlanRepo interface {
	Create(dbc dbctx.Context, rows []*types.MealPlan) ([]*types.MealPlan, error)
	List(dbc dbctx.Context) ([]*types.MealPlan, error)
	GetByID(dbc dbctx.Context, id int64) (*types.MealPlan, error)
	ExistsByName(dbc dbctx.Context, name string) (bool, error)
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type mealPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMealPlanRepo(db *gorm.DB, log *logger.Logger) MealPlanRepo {
	return &mealPlanRepo{db: db, log: log.With("repo", "MealPlanRepo")}
}

func (r *mealPlanRepo) tx(dbc dbctx.Context) *gorm.DB {
	txx := dbc.Tx
	if txx == nil {
		txx = r.db
	}
	return txx.WithContext(dbc.Ctx)
}

func (r *mealPlanRepo) Create(dbc dbctx.Context, rows []*types.MealPlan) ([]*types.MealPlan, error) {
	if len(rows) == 0 {
		return []*types.MealPlan{}, nil
	}
	if err := r.tx(dbc).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *mealPlanRepo) List(dbc dbctx.Context) ([]*types.MealPlan, error) {
	var out []*types.MealPlan
	if err := r.tx(dbc).
		Model(&types.MealPlan{}).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mealPlanRepo) GetByID(dbc dbctx.Context, id int64) (*types.MealPlan, error) {
	var row types.MealPlan
	err := r.tx(dbc).
		Model(&types.MealPlan{}).
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

func (r *mealPlanRepo) ExistsByName(dbc dbctx.Context, name string) (bool, error) {
	var n int64
	if err := r.tx(dbc).
		Model(&types.MealPlan{}).
		Where("name = ?", name).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mealPlanRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := r.tx(dbc).
		Where("id = ?", id).
		Delete(&types.MealPlan{})
	return res.RowsAffected, res.Error
}
