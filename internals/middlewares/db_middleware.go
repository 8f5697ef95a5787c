package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/constants"
	database "quizku_backend/internals/databases"
	helper "quizku_backend/internals/helpers"
)

// DBAvailable: selama health probe melaporkan DB down, semua /api langsung 503
// (tidak menunggu timeout query).
func DBAvailable(status *database.Status) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Path(), "/api") || status.Connected() {
			return c.Next()
		}
		snap := status.Snapshot()
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success":    false,
			"message":    constants.ErrDBUnavailable,
			"error_code": helper.CodeServiceUnavailable,
			"db":         snap,
		})
	}
}
