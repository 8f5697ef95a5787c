package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

type UserRepositoryGorm struct {
	DB *gorm.DB
}

func NewUserRepositoryGorm(db *gorm.DB) *UserRepositoryGorm {
	return &UserRepositoryGorm{DB: db}
}

func (r *UserRepositoryGorm) Create(ctx context.Context, u *model.UserModel) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return helper.MapPGError(r.DB.WithContext(ctx).Create(u).Error)
}

func (r *UserRepositoryGorm) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return &u, nil
}

func (r *UserRepositoryGorm) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return &u, nil
}

func (r *UserRepositoryGorm) FindByEmailOrRegisterNumber(ctx context.Context, email, registerNumber string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).
		Where("email = ? OR register_number = ?", email, registerNumber).
		First(&u).Error
	if err != nil {
		return nil, helper.MapPGError(err)
	}
	return &u, nil
}

func (r *UserRepositoryGorm) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.UserModel, error) {
	out := make([]model.UserModel, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, helper.MapPGError(err)
	}
	return out, nil
}

func (r *UserRepositoryGorm) UpdateProfile(ctx context.Context, id uuid.UUID, upd model.ProfileUpdate) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			return err
		}
		upd.Apply(&u)
		return tx.Model(&u).Select("name", "department", "mobile", "college_name", "updated_at").Updates(&u).Error
	})
	if err != nil {
		return nil, helper.MapPGError(err)
	}
	return &u, nil
}

func (r *UserRepositoryGorm) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	res := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return helper.MapPGError(res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound
	}
	return nil
}

func (r *UserRepositoryGorm) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("role = ?", role).Count(&n).Error
	return n, helper.MapPGError(err)
}
