package route

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/users/support/model"
	helper "quizku_backend/internals/helpers"
	"quizku_backend/internals/mocks"
)

func newApp(userID uuid.UUID, repo *mocks.SupportRepository) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	SupportRoutes(app.Group("/api"), mocks.StubAuth(userID, constants.RoleStudent), repo)
	return app
}

func postSupport(t *testing.T, app *fiber.App, body string) int {
	req := httptest.NewRequest(fiber.MethodPost, "/api/support", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateSupport(t *testing.T) {
	uid := uuid.New()
	repo := new(mocks.SupportRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *model.SupportRequestModel) bool {
		return m.UserID == uid && m.IssueType == "bug" && m.Description == "quiz page freezes"
	})).Return(nil)

	status := postSupport(t, newApp(uid, repo), `{"issueType":" bug ","subject":"Quiz","description":"quiz page freezes"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	repo.AssertExpectations(t)
}

func TestCreateSupport_ShortDescription(t *testing.T) {
	repo := new(mocks.SupportRepository)
	status := postSupport(t, newApp(uuid.New(), repo), `{"issueType":"bug","subject":"Quiz","description":"bad"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSupport_StoreDown(t *testing.T) {
	repo := new(mocks.SupportRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("no reachable servers"))
	status := postSupport(t, newApp(uuid.New(), repo), `{"issueType":"bug","subject":"Quiz","description":"quiz page freezes"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}
