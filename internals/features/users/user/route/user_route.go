package route

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/users/user/controller"
	"quizku_backend/internals/features/users/user/repository"
)

// Base: /api/users (semua butuh login)
func UserUserRoutes(api fiber.Router, authMW fiber.Handler, repo repository.UserRepository) {
	ctrl := controller.NewUserController(repo)

	users := api.Group("/users", authMW)
	users.Get("/me", ctrl.GetMe)
	users.Put("/me", ctrl.UpdateMe)
}
