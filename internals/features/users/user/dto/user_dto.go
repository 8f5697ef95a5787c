package dto

import (
	"strings"
	"time"

	"quizku_backend/internals/features/users/user/model"
)

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserDTO: bentuk user publik (tanpa password)
type UserDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	RegisterNumber string    `json:"registerNumber"`
	Department     string    `json:"department"`
	Email          string    `json:"email"`
	Mobile         string    `json:"mobile"`
	CollegeName    string    `json:"collegeName"`
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToUserDTO(u *model.UserModel) UserDTO {
	return UserDTO{
		ID:             u.ID.String(),
		Name:           u.Name,
		RegisterNumber: u.RegisterNumber,
		Department:     u.Department,
		Email:          u.Email,
		Mobile:         u.Mobile,
		CollegeName:    u.CollegeName,
		Role:           u.Role,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpdateMeRequest: partial update (pointer agar bisa bedakan omit vs kosong)
type UpdateMeRequest struct {
	Name        *string `json:"name" validate:"omitnil,notblank,max=120"`
	Department  *string `json:"department" validate:"omitnil,notblank,max=120"`
	Mobile      *string `json:"mobile" validate:"omitnil,min=5,max=32"`
	CollegeName *string `json:"collegeName" validate:"omitnil,notblank,max=160"`
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	return &s
}

// Normalize: trim semua field yang diisi
func (r *UpdateMeRequest) Normalize() {
	r.Name = trimPtr(r.Name)
	r.Department = trimPtr(r.Department)
	r.Mobile = trimPtr(r.Mobile)
	r.CollegeName = trimPtr(r.CollegeName)
}

func (r *UpdateMeRequest) ToProfileUpdate() model.ProfileUpdate {
	return model.ProfileUpdate{
		Name:        r.Name,
		Department:  r.Department,
		Mobile:      r.Mobile,
		CollegeName: r.CollegeName,
	}
}
