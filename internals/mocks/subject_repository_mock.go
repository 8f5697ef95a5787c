package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"quizku_backend/internals/features/quizzes/subjects/model"
)

type SubjectRepository struct {
	mock.Mock
}

func (m *SubjectRepository) List(ctx context.Context, activeOnly bool) ([]model.SubjectModel, error) {
	args := m.Called(ctx, activeOnly)
	out, _ := args.Get(0).([]model.SubjectModel)
	return out, args.Error(1)
}

func (m *SubjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SubjectModel, error) {
	args := m.Called(ctx, id)
	return subjectOrNil(args.Get(0)), args.Error(1)
}

func (m *SubjectRepository) FindBySlug(ctx context.Context, slug string) (*model.SubjectModel, error) {
	args := m.Called(ctx, slug)
	return subjectOrNil(args.Get(0)), args.Error(1)
}

func (m *SubjectRepository) FindByLabel(ctx context.Context, label string) (*model.SubjectModel, error) {
	args := m.Called(ctx, label)
	return subjectOrNil(args.Get(0)), args.Error(1)
}

func (m *SubjectRepository) Create(ctx context.Context, s *model.SubjectModel) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil && s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *SubjectRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.SubjectModel, error) {
	args := m.Called(ctx, id, active)
	return subjectOrNil(args.Get(0)), args.Error(1)
}

func (m *SubjectRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func subjectOrNil(v any) *model.SubjectModel {
	s, _ := v.(*model.SubjectModel)
	return s
}
