package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/users/support/dto"
	"quizku_backend/internals/features/users/support/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

var validate = helper.NewValidator()

type SupportController struct {
	Repo repository.SupportRepository
}

func NewSupportController(repo repository.SupportRepository) *SupportController {
	return &SupportController{Repo: repo}
}

// POST /api/support
func (sc *SupportController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSupportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(userID)
	if err := sc.Repo.Create(c.UserContext(), m); err != nil {
		return helper.FromStoreError(err, "", "")
	}

	log.Printf("[INFO] Support request %s dari user=%s", m.ID, userID)
	return helper.JsonCreated(c, "Support request submitted", fiber.Map{"request": m})
}
