package route

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/subjects/controller"
	"quizku_backend/internals/features/quizzes/subjects/repository"
)

// Base: /api/subjects (login) + /api/admin/subjects (admin)
func SubjectRoutes(api fiber.Router, authMW, adminMW fiber.Handler, repo repository.SubjectRepository) {
	ctrl := controller.NewSubjectController(repo)

	api.Get("/subjects", authMW, ctrl.ListActive)

	admin := api.Group("/admin/subjects", adminMW)
	admin.Get("/", ctrl.ListAll)
	admin.Post("/", ctrl.Create)
	admin.Delete("/:id", ctrl.Disable)
}
