package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"quizku_backend/internals/features/users/support/model"
)

type SupportRepository struct {
	mock.Mock
}

func (m *SupportRepository) Create(ctx context.Context, r *model.SupportRequestModel) error {
	args := m.Called(ctx, r)
	if args.Error(0) == nil && r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return args.Error(0)
}
