package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/subjects/dto"
	"quizku_backend/internals/features/quizzes/subjects/model"
	"quizku_backend/internals/features/quizzes/subjects/repository"
	helper "quizku_backend/internals/helpers"
)

var validate = helper.NewValidator()

const errSubjectNotFound = "Subject not found"

type SubjectController struct {
	Repo repository.SubjectRepository
}

func NewSubjectController(repo repository.SubjectRepository) *SubjectController {
	return &SubjectController{Repo: repo}
}

// GET /api/subjects (aktif saja, urut label)
func (sc *SubjectController) ListActive(c *fiber.Ctx) error {
	subjects, err := sc.Repo.List(c.UserContext(), true)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"subjects": dto.ToSubjectPublicList(subjects)})
}

// GET /api/admin/subjects
func (sc *SubjectController) ListAll(c *fiber.Ctx) error {
	subjects, err := sc.Repo.List(c.UserContext(), false)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"subjects": dto.ToSubjectDTOList(subjects)})
}

// POST /api/admin/subjects
// Slug sudah ada & non-aktif → diaktifkan lagi (200); sudah aktif → 409.
func (sc *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	slug := helper.SubjectSlug(req.Label)

	existing, err := sc.Repo.FindBySlug(ctx, slug)
	switch {
	case err == nil:
		if existing.Active {
			return fiber.NewError(fiber.StatusConflict, "Subject already exists")
		}
		enabled, err := sc.Repo.SetActive(ctx, existing.ID, true)
		if err != nil {
			return helper.FromStoreError(err, errSubjectNotFound, "")
		}
		log.Printf("[INFO] Subject %s diaktifkan kembali", enabled.Slug)
		return helper.JsonUpdated(c, "Subject re-enabled", fiber.Map{"subject": dto.ToSubjectDTO(enabled)})
	case !errors.Is(err, helper.ErrNotFound):
		return helper.FromStoreError(err, "", "")
	}

	subject := &model.SubjectModel{Slug: slug, Label: req.Label, Active: true}
	if err := sc.Repo.Create(ctx, subject); err != nil {
		return helper.FromStoreError(err, "", "Subject already exists")
	}

	log.Printf("[INFO] Subject dibuat: %s (%s)", subject.Label, subject.Slug)
	return helper.JsonCreated(c, "Subject created", fiber.Map{"subject": dto.ToSubjectDTO(subject)})
}

// DELETE /api/admin/subjects/:id (soft delete)
func (sc *SubjectController) Disable(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject id")
	}

	subject, err := sc.Repo.SetActive(c.UserContext(), id, false)
	if err != nil {
		return helper.FromStoreError(err, errSubjectNotFound, "")
	}
	return helper.JsonDeleted(c, "Subject disabled", fiber.Map{"subject": dto.ToSubjectDTO(subject)})
}
