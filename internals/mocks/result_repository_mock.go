package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"quizku_backend/internals/features/quizzes/results/model"
)

type ResultRepository struct {
	mock.Mock
}

func (m *ResultRepository) Create(ctx context.Context, r *model.ResultModel) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *ResultRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ResultModel, error) {
	args := m.Called(ctx, userID)
	return resultsOrNil(args.Get(0)), args.Error(1)
}

func (m *ResultRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*model.ResultModel, error) {
	args := m.Called(ctx, id, userID)
	r, _ := args.Get(0).(*model.ResultModel)
	return r, args.Error(1)
}

func (m *ResultRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func (m *ResultRepository) ListAll(ctx context.Context) ([]model.ResultModel, error) {
	args := m.Called(ctx)
	return resultsOrNil(args.Get(0)), args.Error(1)
}

func (m *ResultRepository) ListRecent(ctx context.Context, n int) ([]model.ResultModel, error) {
	args := m.Called(ctx, n)
	return resultsOrNil(args.Get(0)), args.Error(1)
}

func resultsOrNil(v any) []model.ResultModel {
	out, _ := v.([]model.ResultModel)
	return out
}
