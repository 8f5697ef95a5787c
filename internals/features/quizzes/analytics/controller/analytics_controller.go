package controller

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/quizzes/analytics/service"
	resultRepo "quizku_backend/internals/features/quizzes/results/repository"
	userRepo "quizku_backend/internals/features/users/user/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

type AnalyticsController struct {
	Results resultRepo.ResultRepository
	Users   userRepo.UserRepository
}

func NewAnalyticsController(results resultRepo.ResultRepository, users userRepo.UserRepository) *AnalyticsController {
	return &AnalyticsController{Results: results, Users: users}
}

// GET /api/analytics/me
func (ac *AnalyticsController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	rows, err := ac.Results.ListByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"subjects": service.LatestPerSubject(rows)})
}

// GET /api/admin/analytics
// Semua bacaan harus sukses; satu gagal → seluruh response error.
func (ac *AnalyticsController) Admin(c *fiber.Ctx) error {
	ctx := c.UserContext()

	students, err := ac.Users.CountByRole(ctx, constants.RoleStudent)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	all, err := ac.Results.ListAll(ctx)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	recent, err := ac.Results.ListRecent(ctx, service.RecentFeedSize)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	users, err := ac.Users.FindByIDs(ctx, service.UserIDs(all, recent))
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}

	ov := service.Overview(students, all, recent, users)
	return helper.JsonOK(c, "ok", fiber.Map{
		"kpis":           ov.KPIs,
		"bySubject":      ov.BySubject,
		"topStudents":    ov.TopStudents,
		"recentAttempts": ov.RecentAttempts,
	})
}
