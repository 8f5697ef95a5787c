package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"quizku_backend/internals/features/users/user/model"
)

// UserRepository: mock testify untuk repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *model.UserModel) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.UserModel, error) {
	args := m.Called(ctx, id)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindByEmailOrRegisterNumber(ctx context.Context, email, registerNumber string) (*model.UserModel, error) {
	args := m.Called(ctx, email, registerNumber)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.UserModel, error) {
	args := m.Called(ctx, ids)
	users, _ := args.Get(0).([]model.UserModel)
	return users, args.Error(1)
}

func (m *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, upd model.ProfileUpdate) (*model.UserModel, error) {
	args := m.Called(ctx, id, upd)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) SetRole(ctx context.Context, id uuid.UUID, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func userOrNil(v any) *model.UserModel {
	u, _ := v.(*model.UserModel)
	return u
}
