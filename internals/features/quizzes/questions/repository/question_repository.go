package repository

import (
	"context"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/questions/model"
)

type QuestionRepository interface {
	List(ctx context.Context, f model.QuestionFilter) ([]model.QuestionModel, error)
	Create(ctx context.Context, q *model.QuestionModel) error
	CreateMany(ctx context.Context, qs []model.QuestionModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
