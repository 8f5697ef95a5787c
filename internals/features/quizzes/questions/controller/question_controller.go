package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/questions/dto"
	"quizku_backend/internals/features/quizzes/questions/model"
	"quizku_backend/internals/features/quizzes/questions/repository"
	subjectRepo "quizku_backend/internals/features/quizzes/subjects/repository"
	helper "quizku_backend/internals/helpers"
)

var validate = helper.NewValidator()

type QuestionController struct {
	Repo     repository.QuestionRepository
	Subjects subjectRepo.SubjectRepository
}

func NewQuestionController(repo repository.QuestionRepository, subjects subjectRepo.SubjectRepository) *QuestionController {
	return &QuestionController{Repo: repo, Subjects: subjects}
}

// GET /api/questions?subject=&limit= (publik, urut paling lama dulu)
func (qc *QuestionController) ListForQuiz(c *fiber.Ctx) error {
	subject := strings.TrimSpace(c.Query("subject"))
	limit, ok := dto.ParseQuizLimit(c.Query("limit"))

	fieldErrs := map[string][]string{}
	if subject == "" {
		fieldErrs["subject"] = []string{"subject is required"}
	}
	if !ok {
		fieldErrs["limit"] = []string{"limit must be an integer between 1 and 50"}
	}
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}

	questions, err := qc.Repo.List(c.UserContext(), model.QuestionFilter{Subject: subject, Limit: limit})
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"questions": dto.ToQuizQuestions(questions)})
}

// GET /api/admin/questions?subject= (terbaru dulu)
func (qc *QuestionController) ListAll(c *fiber.Ctx) error {
	f := model.QuestionFilter{Subject: strings.TrimSpace(c.Query("subject")), NewestFirst: true}
	questions, err := qc.Repo.List(c.UserContext(), f)
	if err != nil {
		return helper.FromStoreError(err, "", "")
	}
	return helper.JsonOK(c, "ok", fiber.Map{"questions": dto.ToQuestionDTOList(questions)})
}

// POST /api/admin/questions
func (qc *QuestionController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.InvalidBody(c)
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctx := c.UserContext()
	subject, err := qc.Subjects.FindByLabel(ctx, req.Subject)
	switch {
	case errors.Is(err, helper.ErrNotFound), err == nil && !subject.Active:
		return helper.JsonValidationError(c, map[string][]string{
			"subject": {"subject must be one of the active subjects"},
		})
	case err != nil:
		return helper.FromStoreError(err, "", "")
	}

	q := req.ToModel()
	if err := qc.Repo.Create(ctx, q); err != nil {
		return helper.FromStoreError(err, "", "")
	}

	log.Printf("[INFO] Question %s dibuat (subject=%s)", q.ID, q.Subject)
	return helper.JsonCreated(c, "Question created", fiber.Map{"question": dto.ToQuestionDTO(q)})
}

// DELETE /api/admin/questions/:id
func (qc *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}
	if err := qc.Repo.Delete(c.UserContext(), id); err != nil {
		return helper.FromStoreError(err, "Question not found", "")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"ok": true})
}
