package controller

import (
	"github.com/gofiber/fiber/v2"

	authDTO "quizku_backend/internals/features/users/auth/dto"
	"quizku_backend/internals/features/users/auth/service"
	helper "quizku_backend/internals/helpers"
)

var validate = helper.NewValidator()

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ac.Svc.Register(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Registered", fiber.Map{"token": res.Token, "user": res.User})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ac.Svc.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Logged in", fiber.Map{"token": res.Token, "user": res.User})
}

// POST /api/admin/register
func (ac *AuthController) AdminRegister(c *fiber.Ctx) error {
	var req authDTO.AdminRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ac.Svc.AdminRegister(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Admin registered", fiber.Map{"token": res.Token, "user": res.User})
}

// POST /api/admin/login
func (ac *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ac.Svc.AdminLogin(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Logged in", fiber.Map{"token": res.Token, "user": res.User})
}
