package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quizku_backend/internals/constants"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

// RoleChecker membaca role terkini dari direktori user (strict mode).
type RoleChecker func(ctx context.Context, userID uuid.UUID) (string, error)

type AuthJWTOpts struct {
	Secret string
	// RoleChecker opsional: kalau diisi, gerbang admin memverifikasi ulang role
	// ke direktori user di setiap request.
	RoleChecker RoleChecker
}

// AuthJWT: wajib Bearer token valid. Gagal → 401 sebelum handler jalan.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := mustSecret(o.Secret)
	return func(c *fiber.Ctx) error {
		if err := authenticate(c, secret); err != nil {
			return err
		}
		return c.Next()
	}
}

// RequireAdmin: identitas (401) lalu role admin (403).
func RequireAdmin(o AuthJWTOpts) fiber.Handler {
	secret := mustSecret(o.Secret)
	return func(c *fiber.Ctx) error {
		if err := authenticate(c, secret); err != nil {
			return err
		}

		role := helperAuth.GetRoleFromToken(c)
		if o.RoleChecker != nil {
			userID, _ := helperAuth.GetUserIDFromToken(c)
			fresh, err := o.RoleChecker(c.UserContext(), userID)
			switch {
			case errors.Is(err, helper.ErrNotFound):
				return fiber.NewError(fiber.StatusUnauthorized, constants.ErrInvalidToken)
			case err != nil:
				log.Printf("[ERROR] RoleChecker user=%s: %v", userID, err)
				return fiber.NewError(fiber.StatusServiceUnavailable, constants.ErrDBUnavailable)
			}
			role = fresh
			c.Locals(helperAuth.LocRole, role)
		}

		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.ErrAdminOnly)
		}
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, secret string) error {
	raw := extractBearerToken(c)
	if raw == "" {
		return fiber.NewError(fiber.StatusUnauthorized, constants.ErrMissingToken)
	}

	claims, err := helperAuth.ParseToken(secret, raw)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, constants.ErrInvalidToken)
	}

	userID, _ := uuid.Parse(strings.TrimSpace(claims.UserID))
	helperAuth.SetIdentity(c, userID, claims.Role)
	return nil
}

func mustSecret(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		panic("AuthJWT: Secret wajib diisi")
	}
	return s
}
