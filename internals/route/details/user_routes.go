package details

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/configs"
	authRoute "quizku_backend/internals/features/users/auth/route"
	authService "quizku_backend/internals/features/users/auth/service"
	supportRepo "quizku_backend/internals/features/users/support/repository"
	supportRoute "quizku_backend/internals/features/users/support/route"
	userRepo "quizku_backend/internals/features/users/user/repository"
	userRoute "quizku_backend/internals/features/users/user/route"
)

// UserRoutes: auth (publik), profil & support (login).
func UserRoutes(api fiber.Router, cfg *configs.Config, authMW fiber.Handler, users userRepo.UserRepository, support supportRepo.SupportRepository) {
	svc := authService.NewAuthService(users, cfg.JWTSecret, cfg.JWTExpiresIn, cfg.AdminSetupKey)

	authRoute.AuthRoutes(api, svc)
	userRoute.UserUserRoutes(api, authMW, users)
	supportRoute.SupportRoutes(api, authMW, support)
}
