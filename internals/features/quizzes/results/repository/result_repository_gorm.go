package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/results/model"
	helper "quizku_backend/internals/helpers"
)

type ResultRepositoryGorm struct {
	DB *gorm.DB
}

func NewResultRepositoryGorm(db *gorm.DB) *ResultRepositoryGorm {
	return &ResultRepositoryGorm{DB: db}
}

func (r *ResultRepositoryGorm) newestFirst(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&model.ResultModel{}).Order("created_at DESC").Order("id DESC")
}

func (r *ResultRepositoryGorm) Create(ctx context.Context, m *model.ResultModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return helper.MapPGError(r.DB.WithContext(ctx).Create(m).Error)
}

func (r *ResultRepositoryGorm) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ResultModel, error) {
	var out []model.ResultModel
	if err := r.newestFirst(ctx).Where("user_id = ?", userID).Find(&out).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return out, nil
}

func (r *ResultRepositoryGorm) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*model.ResultModel, error) {
	var m model.ResultModel
	if err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return &m, nil
}

func (r *ResultRepositoryGorm) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ResultModel{})
	if res.Error != nil {
		return 0, helper.MapPGError(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *ResultRepositoryGorm) ListAll(ctx context.Context) ([]model.ResultModel, error) {
	var out []model.ResultModel
	if err := r.newestFirst(ctx).Find(&out).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return out, nil
}

func (r *ResultRepositoryGorm) ListRecent(ctx context.Context, n int) ([]model.ResultModel, error) {
	var out []model.ResultModel
	if n <= 0 {
		return out, nil
	}
	if err := r.newestFirst(ctx).Limit(n).Find(&out).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return out, nil
}
