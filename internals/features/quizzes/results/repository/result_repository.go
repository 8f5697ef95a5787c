package repository

import (
	"context"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/results/model"
)

// ResultRepository: akses ledger hasil kuis. Semua list urut terbaru dulu
// (createdAt desc, id desc).
type ResultRepository interface {
	Create(ctx context.Context, r *model.ResultModel) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ResultModel, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*model.ResultModel, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	ListAll(ctx context.Context) ([]model.ResultModel, error)
	ListRecent(ctx context.Context, n int) ([]model.ResultModel, error)
}
