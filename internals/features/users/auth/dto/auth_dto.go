package dto

import (
	"strings"

	userDTO "quizku_backend/internals/features/users/user/dto"
)

// RegisterRequest: self-register mahasiswa
type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	RegisterNumber string `json:"registerNumber" validate:"required,min=2,max=64"`
	Department     string `json:"department" validate:"required,min=2,max=120"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Mobile         string `json:"mobile" validate:"required,min=7,max=32"`
	Password       string `json:"password" validate:"required,min=6,max=72"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RegisterNumber = strings.TrimSpace(r.RegisterNumber)
	r.Department = strings.TrimSpace(r.Department)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Mobile = strings.TrimSpace(r.Mobile)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// AdminRegisterRequest: pendaftaran admin, dikunci ADMIN_SETUP_KEY
type AdminRegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	SetupKey string `json:"setupKey" validate:"required"`
}

func (r *AdminRegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// AuthResponse: token + user
type AuthResponse struct {
	Token string          `json:"token"`
	User  userDTO.UserDTO `json:"user"`
}
