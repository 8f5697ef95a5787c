package dto

import (
	"strings"

	"github.com/google/uuid"

	"quizku_backend/internals/features/users/support/model"
)

type CreateSupportRequest struct {
	IssueType   string `json:"issueType" validate:"required,min=1,max=80"`
	Subject     string `json:"subject" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=5,max=5000"`
}

func (r *CreateSupportRequest) Normalize() {
	r.IssueType = strings.TrimSpace(r.IssueType)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateSupportRequest) ToModel(userID uuid.UUID) *model.SupportRequestModel {
	return &model.SupportRequestModel{
		UserID:      userID,
		IssueType:   r.IssueType,
		Subject:     r.Subject,
		Description: r.Description,
	}
}
