package dto

import (
	"strings"
	"time"

	"quizku_backend/internals/features/quizzes/subjects/model"
)

// SubjectPublic: bentuk ringkas untuk daftar pilihan mahasiswa
type SubjectPublic struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

type SubjectDTO struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Label     string    `json:"label"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToSubjectPublicList(in []model.SubjectModel) []SubjectPublic {
	out := make([]SubjectPublic, 0, len(in))
	for _, s := range in {
		out = append(out, SubjectPublic{Slug: s.Slug, Label: s.Label})
	}
	return out
}

func ToSubjectDTO(s *model.SubjectModel) SubjectDTO {
	return SubjectDTO{
		ID:        s.ID.String(),
		Slug:      s.Slug,
		Label:     s.Label,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToSubjectDTOList(in []model.SubjectModel) []SubjectDTO {
	out := make([]SubjectDTO, 0, len(in))
	for i := range in {
		out = append(out, ToSubjectDTO(&in[i]))
	}
	return out
}

type CreateSubjectRequest struct {
	Label string `json:"label" validate:"required,min=1,max=80"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Label = strings.Join(strings.Fields(r.Label), " ")
}
