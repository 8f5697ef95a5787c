package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/results/model"
)

type ResultDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Subject   string    `json:"subject"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToResultDTO(r *model.ResultModel) ResultDTO {
	return ResultDTO{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Subject:   r.Subject,
		Score:     r.Score,
		Total:     r.Total,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToResultDTOList(in []model.ResultModel) []ResultDTO {
	out := make([]ResultDTO, 0, len(in))
	for i := range in {
		out = append(out, ToResultDTO(&in[i]))
	}
	return out
}

// CreateResultRequest: score <= total sengaja tidak dicek
type CreateResultRequest struct {
	Subject string `json:"subject" validate:"required,min=1"`
	Score   *int   `json:"score" validate:"required,min=0"`
	Total   *int   `json:"total" validate:"required,min=1"`
}

func (r *CreateResultRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
}

func (r *CreateResultRequest) ToModel(userID uuid.UUID) *model.ResultModel {
	return &model.ResultModel{
		UserID:  userID,
		Subject: r.Subject,
		Score:   *r.Score,
		Total:   *r.Total,
	}
}
