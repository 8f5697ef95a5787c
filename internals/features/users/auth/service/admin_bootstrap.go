package service

import (
	"context"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	"quizku_backend/internals/constants"
	authHelper "quizku_backend/internals/features/users/auth/helper"
	"quizku_backend/internals/features/users/user/model"
	"quizku_backend/internals/features/users/user/repository"
	helper "quizku_backend/internals/helpers"
)

// AdminRegisterNumber: deterministik dari email supaya bootstrap idempoten.
func AdminRegisterNumber(email string) string {
	h := hex.EncodeToString([]byte(email))
	if len(h) > 12 {
		h = h[:12]
	}
	return "ADMIN-" + h
}

// EnsureAdminUser membuat akun admin dari ENV, atau mempromosikan user yang
// sudah ada dengan email tsb. Tanpa email/password: no-op.
func EnsureAdminUser(ctx context.Context, users repository.UserRepository, email, password, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	if strings.TrimSpace(name) == "" {
		name = "Admin"
	}

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == constants.RoleAdmin {
			return nil
		}
		if err := users.SetRole(ctx, existing.ID, constants.RoleAdmin); err != nil {
			return err
		}
		log.Printf("[SUCCESS] User %s dipromosikan jadi admin", email)
		return nil
	case !errors.Is(err, helper.ErrNotFound):
		return err
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		return err
	}
	admin := &model.UserModel{
		Name:           name,
		RegisterNumber: AdminRegisterNumber(email),
		Department:     adminDepartment,
		Email:          email,
		Mobile:         adminMobile,
		Password:       hash,
		CollegeName:    adminCollegeName,
		Role:           constants.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("[SUCCESS] Admin bootstrap dibuat: %s", email)
	return nil
}
