package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/users/user/dto"
	"quizku_backend/internals/features/users/user/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

var validate = helper.NewValidator()

type UserController struct {
	Repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{Repo: repo}
}

// GET /api/users/me
func (uc *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := uc.Repo.FindByID(c.UserContext(), userID)
	if err != nil {
		return helper.FromStoreError(err, constants.ErrUserNotFound, "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"user": dto.ToUserDTO(user)})
}

// PUT /api/users/me
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	upd := req.ToProfileUpdate()
	if upd.IsEmpty() {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	user, err := uc.Repo.UpdateProfile(c.UserContext(), userID, upd)
	if err != nil {
		return helper.FromStoreError(err, constants.ErrUserNotFound, "A user with those details already exists")
	}

	log.Printf("[INFO] Profile updated user=%s", userID)
	return helper.JsonUpdated(c, "Profile updated", fiber.Map{"user": dto.ToUserDTO(user)})
}
