package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/subjects/model"
	helper "quizku_backend/internals/helpers"
)

type SubjectRepositoryGorm struct {
	DB *gorm.DB
}

func NewSubjectRepositoryGorm(db *gorm.DB) *SubjectRepositoryGorm {
	return &SubjectRepositoryGorm{DB: db}
}

func (r *SubjectRepositoryGorm) List(ctx context.Context, activeOnly bool) ([]model.SubjectModel, error) {
	var out []model.SubjectModel
	q := r.DB.WithContext(ctx).Model(&model.SubjectModel{})
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Order("label ASC").Find(&out).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return out, nil
}

func (r *SubjectRepositoryGorm) first(ctx context.Context, query string, arg any) (*model.SubjectModel, error) {
	var s model.SubjectModel
	if err := r.DB.WithContext(ctx).Where(query, arg).First(&s).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return &s, nil
}

func (r *SubjectRepositoryGorm) FindByID(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *SubjectRepositoryGorm) FindBySlug(ctx context.Context, slug string) (*model.SubjectModel, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *SubjectRepositoryGorm) FindByLabel(ctx context.Context, label string) (*model.SubjectModel, error) {
	return r.first(ctx, "label = ?", label)
}

func (r *SubjectRepositoryGorm) Create(ctx context.Context, s *model.SubjectModel) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	// Select eksplisit: default:true di tag akan menimpa Active=false kalau zero-value.
	return helper.MapPGError(r.DB.WithContext(ctx).
		Select("id", "slug", "label", "active", "created_at", "updated_at").
		Create(s).Error)
}

func (r *SubjectRepositoryGorm) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.SubjectModel, error) {
	res := r.DB.WithContext(ctx).Model(&model.SubjectModel{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return nil, helper.MapPGError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, helper.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *SubjectRepositoryGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.SubjectModel{}).Count(&n).Error
	return n, helper.MapPGError(err)
}
