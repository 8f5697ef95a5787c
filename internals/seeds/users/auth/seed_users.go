package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"quizku_backend/internals/constants"
	authHelper "quizku_backend/internals/features/users/auth/helper"
	"quizku_backend/internals/features/users/user/model"
	"quizku_backend/internals/features/users/user/repository"
	helper "quizku_backend/internals/helpers"
)

type UserSeed struct {
	Name           string `json:"name"`
	RegisterNumber string `json:"registerNumber"`
	Department     string `json:"department"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Password       string `json:"password"`
}

// SeedUsersFromJSON: akun mahasiswa demo untuk lingkungan dev. Email yang sudah ada dilewati.
func SeedUsersFromJSON(ctx context.Context, repo repository.UserRepository, filePath string) error {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca %s: %w", filePath, err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, data := range inputs {
		email := strings.ToLower(strings.TrimSpace(data.Email))
		_, err := repo.FindByEmailOrRegisterNumber(ctx, email, data.RegisterNumber)
		if err == nil {
			log.Printf("ℹ️ User dengan email '%s' sudah ada, dilewati.", email)
			continue
		}
		if !errors.Is(err, helper.ErrNotFound) {
			return err
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", email, err)
			continue
		}

		newUser := model.UserModel{
			Name:           data.Name,
			RegisterNumber: data.RegisterNumber,
			Department:     data.Department,
			Email:          email,
			Mobile:         data.Mobile,
			Password:       hashedPassword,
			CollegeName:    constants.DefaultCollegeName,
			Role:           constants.RoleStudent,
		}
		if err := repo.Create(ctx, &newUser); err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", email, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s'", email)
		}
	}
	return nil
}
