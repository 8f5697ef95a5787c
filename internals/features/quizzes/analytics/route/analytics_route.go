package route

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/analytics/controller"
	resultRepo "quizku_backend/internals/features/quizzes/results/repository"
	userRepo "quizku_backend/internals/features/users/user/repository"
)

// Base: /api/analytics/me (login) + /api/admin/analytics (admin)
func AnalyticsRoutes(api fiber.Router, authMW, adminMW fiber.Handler, results resultRepo.ResultRepository, users userRepo.UserRepository) {
	ctrl := controller.NewAnalyticsController(results, users)

	api.Get("/analytics/me", authMW, ctrl.Me)
	api.Get("/admin/analytics", adminMW, ctrl.Admin)
}
