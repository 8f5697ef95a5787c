package route

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/questions/controller"
	"quizku_backend/internals/features/quizzes/questions/repository"
	subjectRepo "quizku_backend/internals/features/quizzes/subjects/repository"
)

// Base: /api/questions (publik) + /api/admin/questions (admin)
func QuestionRoutes(api fiber.Router, adminMW fiber.Handler, repo repository.QuestionRepository, subjects subjectRepo.SubjectRepository) {
	ctrl := controller.NewQuestionController(repo, subjects)

	api.Get("/questions", ctrl.ListForQuiz)

	admin := api.Group("/admin/questions", adminMW)
	admin.Get("/", ctrl.ListAll)
	admin.Post("/", ctrl.Create)
	admin.Delete("/:id", ctrl.Delete)
}
