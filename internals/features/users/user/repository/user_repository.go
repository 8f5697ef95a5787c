// internals/features/users/user/repository/user_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"quizku_backend/internals/features/users/user/model"
)

// UserRepository: direktori user. Implementasi gorm & mongo mengembalikan
// helper.ErrNotFound / helper.ErrDuplicate untuk kasus yang dikenal.
type UserRepository interface {
	Create(ctx context.Context, u *model.UserModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error)
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	FindByEmailOrRegisterNumber(ctx context.Context, email, registerNumber string) (*model.UserModel, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.UserModel, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd model.ProfileUpdate) (*model.UserModel, error)
	SetRole(ctx context.Context, id uuid.UUID, role string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}

// GetRole dipakai middleware strict-role (AuthJWTOpts.RoleChecker).
func GetRole(repo UserRepository) func(ctx context.Context, id uuid.UUID) (string, error) {
	return func(ctx context.Context, id uuid.UUID) (string, error) {
		u, err := repo.FindByID(ctx, id)
		if err != nil {
			return "", err
		}
		return u.Role, nil
	}
}
