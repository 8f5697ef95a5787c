// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quizku_backend/internals/constants"
	authDTO "quizku_backend/internals/features/users/auth/dto"
	authHelper "quizku_backend/internals/features/users/auth/helper"
	userDTO "quizku_backend/internals/features/users/user/dto"
	"quizku_backend/internals/features/users/user/model"
	"quizku_backend/internals/features/users/user/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

const (
	adminDepartment  = "Administration"
	adminMobile      = "0000000000"
	adminCollegeName = "Admin"
)

type AuthService struct {
	Users         repository.UserRepository
	Secret        string
	TTL           time.Duration
	AdminSetupKey string
}

func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration, adminSetupKey string) *AuthService {
	return &AuthService{Users: users, Secret: secret, TTL: ttl, AdminSetupKey: adminSetupKey}
}

// ========================== REGISTER (student) ==========================
func (s *AuthService) Register(ctx context.Context, req authDTO.RegisterRequest) (*authDTO.AuthResponse, error) {
	_, err := s.Users.FindByEmailOrRegisterNumber(ctx, req.Email, req.RegisterNumber)
	switch {
	case err == nil:
		return nil, fiber.NewError(fiber.StatusConflict, "Email or Register Number already exists")
	case !errors.Is(err, helper.ErrNotFound):
		return nil, helper.FromStoreError(err, "", "")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &model.UserModel{
		Name:           req.Name,
		RegisterNumber: req.RegisterNumber,
		Department:     req.Department,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Password:       hash,
		CollegeName:    constants.DefaultCollegeName,
		Role:           constants.RoleStudent,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, helper.FromStoreError(err, "", "Email or Register Number already exists")
	}

	log.Printf("[SUCCESS] Student registered id=%s", user.ID)
	return s.issue(user)
}

// ========================== LOGIN (any role) ==========================
func (s *AuthService) Login(ctx context.Context, req authDTO.LoginRequest) (*authDTO.AuthResponse, error) {
	user, err := s.checkCredentials(ctx, req.Email, req.Password, constants.ErrInvalidLogin)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// ========================== ADMIN REGISTER ==========================
func (s *AuthService) AdminRegister(ctx context.Context, req authDTO.AdminRegisterRequest) (*authDTO.AuthResponse, error) {
	if strings.TrimSpace(s.AdminSetupKey) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Admin signup is disabled (missing ADMIN_SETUP_KEY)")
	}
	if req.SetupKey != s.AdminSetupKey {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Admin Setup Key")
	}

	existing, err := s.Users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if existing.Role == constants.RoleAdmin {
			return nil, fiber.NewError(fiber.StatusConflict, "Admin account already exists. Please login.")
		}
		return nil, fiber.NewError(fiber.StatusConflict, "Email already exists as a student. Use a different email.")
	case !errors.Is(err, helper.ErrNotFound):
		return nil, helper.FromStoreError(err, "", "")
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &model.UserModel{
		Name:           req.Name,
		RegisterNumber: "ADMIN-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Department:     adminDepartment,
		Email:          req.Email,
		Mobile:         adminMobile,
		Password:       hash,
		CollegeName:    adminCollegeName,
		Role:           constants.RoleAdmin,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, helper.FromStoreError(err, "", "Admin account already exists. Please login.")
	}

	log.Printf("[SUCCESS] Admin registered id=%s", user.ID)
	return s.issue(user)
}

// ========================== ADMIN LOGIN ==========================
func (s *AuthService) AdminLogin(ctx context.Context, req authDTO.LoginRequest) (*authDTO.AuthResponse, error) {
	user, err := s.checkCredentials(ctx, req.Email, req.Password, constants.ErrInvalidAdmin)
	if err != nil {
		return nil, err
	}
	if user.Role != constants.RoleAdmin {
		return nil, fiber.NewError(fiber.StatusUnauthorized, constants.ErrInvalidAdmin)
	}
	return s.issue(user)
}

func (s *AuthService) checkCredentials(ctx context.Context, email, password, failMsg string) (*model.UserModel, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, failMsg)
		}
		return nil, helper.FromStoreError(err, "", "")
	}
	if err := authHelper.CheckPasswordHash(user.Password, password); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, failMsg)
	}
	return user, nil
}

func (s *AuthService) issue(user *model.UserModel) (*authDTO.AuthResponse, error) {
	token, err := helperAuth.IssueToken(s.Secret, user.ID, user.Role, s.TTL)
	if err != nil {
		log.Printf("[ERROR] issue token user=%s: %v", user.ID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}
	return &authDTO.AuthResponse{Token: token, User: userDTO.ToUserDTO(user)}, nil
}
