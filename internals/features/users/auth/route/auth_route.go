// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/users/auth/controller"
	"quizku_backend/internals/features/users/auth/service"
	rateLimiter "quizku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (tanpa token).
// Base: /api/auth dan /api/admin
func AuthRoutes(api fiber.Router, svc *service.AuthService) {
	ctrl := controller.NewAuthController(svc)

	auth := api.Group("/auth")
	auth.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)

	admin := api.Group("/admin")
	admin.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.AdminRegister)
	admin.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.AdminLogin)
}
