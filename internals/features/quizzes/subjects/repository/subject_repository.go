package repository

import (
	"context"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/subjects/model"
)

type SubjectRepository interface {
	// List urut label asc; activeOnly=true untuk tampilan mahasiswa.
	List(ctx context.Context, activeOnly bool) ([]model.SubjectModel, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error)
	FindBySlug(ctx context.Context, slug string) (*model.SubjectModel, error)
	FindByLabel(ctx context.Context, label string) (*model.SubjectModel, error)
	Create(ctx context.Context, s *model.SubjectModel) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.SubjectModel, error)
	Count(ctx context.Context) (int64, error)
}
