package route

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/users/support/controller"
	"quizku_backend/internals/features/users/support/repository"
)

// Base: /api/support (login wajib)
func SupportRoutes(api fiber.Router, authMW fiber.Handler, repo repository.SupportRepository) {
	ctrl := controller.NewSupportController(repo)

	support := api.Group("/support", authMW)
	support.Post("/", ctrl.Create)
}
