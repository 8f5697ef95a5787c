// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	userRepo "quizku_backend/internals/features/users/user/repository"
	middlewares "quizku_backend/internals/middlewares"
	authMiddleware "quizku_backend/internals/middlewares/auth"
	routeDetails "quizku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, cfg *configs.Config, stores Stores, status *database.Status) {
	startTime = time.Now()

	BaseRoutes(app, status)

	// ===================== MIDDLEWARE AUTH =====================
	opts := authMiddleware.AuthJWTOpts{Secret: cfg.JWTSecret}
	authMW := authMiddleware.AuthJWT(opts)

	adminOpts := opts
	if cfg.AuthStrictRole {
		log.Println("[INFO] AUTH_STRICT_ROLE aktif: role admin dicek ulang ke DB")
		adminOpts.RoleChecker = userRepo.GetRole(stores.Users)
	}
	adminMW := authMiddleware.RequireAdmin(adminOpts)

	// ===================== /api =====================
	api := app.Group("/api", middlewares.GlobalRateLimiter())

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(api, cfg, authMW, stores.Users, stores.Support)

	log.Println("[INFO] Mounting Quiz routes...")
	routeDetails.QuizRoutes(api, authMW, adminMW, routeDetails.QuizRepos{
		Users:     stores.Users,
		Subjects:  stores.Subjects,
		Questions: stores.Questions,
		Results:   stores.Results,
	})

	// 404 untuk semua path yang tidak terdaftar
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})
}
