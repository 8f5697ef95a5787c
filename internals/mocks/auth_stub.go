package mocks

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helperAuth "quizku_backend/internals/helpers/auth"
)

// StubAuth: pengganti AuthJWT di test handler, langsung mengisi identitas.
func StubAuth(userID uuid.UUID, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		helperAuth.SetIdentity(c, userID, role)
		return c.Next()
	}
}
