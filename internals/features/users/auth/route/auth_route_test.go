package route

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quizku_backend/internals/features/users/auth/service"
	helper "quizku_backend/internals/helpers"
	"quizku_backend/internals/mocks"
)

func newApp(repo *mocks.UserRepository) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	AuthRoutes(app.Group("/api"), service.NewAuthService(repo, "s", time.Hour, "setup"))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestRegister_ValidationErrorsPerField(t *testing.T) {
	repo := new(mocks.UserRepository)
	status, body := post(t, newApp(repo), "/api/auth/register", `{"name":"A","email":"not-an-email","password":"123"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	for _, f := range []string{"name", "registerNumber", "department", "email", "mobile", "password"} {
		assert.Contains(t, errs, f)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_InvalidCredentialsShape(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, "a@x.io").Return(nil, helper.ErrNotFound)

	status, body := post(t, newApp(repo), "/api/auth/login", `{"email":"A@x.io","password":"whatever"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid email or password", body["message"])
	assert.Equal(t, "UNAUTHENTICATED", body["error_code"])
}

func TestAdminRegister_WrongKey(t *testing.T) {
	status, body := post(t, newApp(new(mocks.UserRepository)), "/api/admin/register",
		`{"name":"Root","email":"root@x.io","password":"secret1","setupKey":"bad"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid Admin Setup Key", body["message"])
}

func TestLogin_RateLimited(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, helper.ErrNotFound)
	app := newApp(repo)

	for i := 0; i < 5; i++ {
		status, _ := post(t, app, "/api/auth/login", `{"email":"a@x.io","password":"x"}`)
		require.Equal(t, fiber.StatusUnauthorized, status)
	}
	status, body := post(t, app, "/api/auth/login", `{"email":"a@x.io","password":"x"}`)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.Equal(t, "TOO_MANY_REQUESTS", body["error_code"])
}
