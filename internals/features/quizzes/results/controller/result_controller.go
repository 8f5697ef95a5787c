package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/results/dto"
	"quizku_backend/internals/features/quizzes/results/repository"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

var validate = helper.NewValidator()

type ResultController struct {
	Repo repository.ResultRepository
}

func NewResultController(repo repository.ResultRepository) *ResultController {
	return &ResultController{Repo: repo}
}

// POST /api/results
func (rc *ResultController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	result := req.ToModel(userID)
	if err := rc.Repo.Create(c.UserContext(), result); err != nil {
		return helper.FromStoreError(err, "", "")
	}

	log.Printf("[INFO] Result %s disimpan user=%s subject=%s %d/%d",
		result.ID, userID, result.Subject, result.Score, result.Total)
	return helper.JsonCreated(c, "Result saved", fiber.Map{"result": dto.ToResultDTO(result)})
}

// GET /api/results/me
func (rc *ResultController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	results, err := rc.Repo.ListByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"results": dto.ToResultDTOList(results)})
}

// GET /api/results/me/:id
func (rc *ResultController) GetMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// id yang bukan uuid tidak mungkin milik user ini
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Result not found")
	}

	result, err := rc.Repo.FindByIDForUser(c.UserContext(), id, userID)
	if err != nil {
		return helper.FromStoreError(err, "Result not found", "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"result": dto.ToResultDTO(result)})
}

// DELETE /api/results/me
func (rc *ResultController) DeleteMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	n, err := rc.Repo.DeleteByUser(c.UserContext(), userID)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}

	log.Printf("[INFO] %d result dihapus user=%s", n, userID)
	return helper.JsonDeleted(c, "Results deleted", fiber.Map{"deletedCount": n})
}
