package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	"quizku_backend/internals/middlewares/logger"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500
func RecoveryMiddleware(stackTrace bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: stackTrace,
	})
}

// SetupMiddlewares memasang middleware global sesuai urutan: recover → log → CORS → DB gate.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config, status *database.Status) {
	app.Use(RecoveryMiddleware(!cfg.IsProduction()))
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins, cfg.IsProduction()))
	app.Use(DBAvailable(status))
}
