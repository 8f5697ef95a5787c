package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"quizku_backend/internals/features/quizzes/questions/model"
)

type QuestionRepository struct {
	mock.Mock
}

func (m *QuestionRepository) List(ctx context.Context, f model.QuestionFilter) ([]model.QuestionModel, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]model.QuestionModel)
	return out, args.Error(1)
}

func (m *QuestionRepository) Create(ctx context.Context, q *model.QuestionModel) error {
	args := m.Called(ctx, q)
	if args.Error(0) == nil && q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *QuestionRepository) CreateMany(ctx context.Context, qs []model.QuestionModel) error {
	return m.Called(ctx, qs).Error(0)
}

func (m *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *QuestionRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}
