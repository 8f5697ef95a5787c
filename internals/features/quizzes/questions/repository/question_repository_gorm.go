package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/questions/model"
	helper "quizku_backend/internals/helpers"
)

type QuestionRepositoryGorm struct {
	DB *gorm.DB
}

func NewQuestionRepositoryGorm(db *gorm.DB) *QuestionRepositoryGorm {
	return &QuestionRepositoryGorm{DB: db}
}

func (r *QuestionRepositoryGorm) List(ctx context.Context, f model.QuestionFilter) ([]model.QuestionModel, error) {
	q := r.DB.WithContext(ctx).Model(&model.QuestionModel{})
	if f.Subject != "" {
		q = q.Where("subject = ?", f.Subject)
	}
	if f.NewestFirst {
		q = q.Order("created_at DESC").Order("id DESC")
	} else {
		q = q.Order("created_at ASC").Order("id ASC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var out []model.QuestionModel
	if err := q.Find(&out).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return out, nil
}

func (r *QuestionRepositoryGorm) Create(ctx context.Context, q *model.QuestionModel) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return helper.MapPGError(r.DB.WithContext(ctx).Create(q).Error)
}

func (r *QuestionRepositoryGorm) CreateMany(ctx context.Context, qs []model.QuestionModel) error {
	if len(qs) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range qs {
		if qs[i].ID == uuid.Nil {
			qs[i].ID = uuid.New()
		}
		// urutan seed dipertahankan lewat createdAt yang naik per item
		if qs[i].CreatedAt.IsZero() {
			qs[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		}
	}
	return helper.MapPGError(r.DB.WithContext(ctx).CreateInBatches(qs, 100).Error)
}

func (r *QuestionRepositoryGorm) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&model.QuestionModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapPGError(res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound
	}
	return nil
}

func (r *QuestionRepositoryGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.QuestionModel{}).Count(&n).Error
	return n, helper.MapPGError(err)
}
