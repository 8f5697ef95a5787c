package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "quizku_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, status *database.Status) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":      true,
			"message": "Student Learning Platform API",
			"health":  "/health",
			"apiBase": "/api",
		})
	})

	// /health selalu 200 supaya platform tidak me-restart saat DB sementara down
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":             true,
			"db":             status.Snapshot(),
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
