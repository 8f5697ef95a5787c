package route

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/results/controller"
	"quizku_backend/internals/features/quizzes/results/repository"
)

// Base: /api/results (login wajib, hanya data milik sendiri)
func ResultRoutes(api fiber.Router, authMW fiber.Handler, repo repository.ResultRepository) {
	ctrl := controller.NewResultController(repo)

	results := api.Group("/results", authMW)
	results.Post("/", ctrl.Create)
	results.Get("/me", ctrl.ListMine)
	results.Get("/me/:id", ctrl.GetMine)
	results.Delete("/me", ctrl.DeleteMine)
}
