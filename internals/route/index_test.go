package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/constants"
	database "quizku_backend/internals/databases"
	resultModel "quizku_backend/internals/features/quizzes/results/model"
	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
	middlewares "quizku_backend/internals/middlewares"
	"quizku_backend/internals/mocks"
)

const secret = "routes-secret"

type fixture struct {
	app     *fiber.App
	users   *mocks.UserRepository
	results *mocks.ResultRepository
	status  *database.Status
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cfg := &configs.Config{AppEnv: "development", JWTSecret: secret, JWTExpiresIn: time.Hour}
	f := fixture{
		users:   new(mocks.UserRepository),
		results: new(mocks.ResultRepository),
		status:  database.NewStatus(),
	}
	f.status.Set(nil)

	f.app = fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	middlewares.SetupMiddlewares(f.app, cfg, f.status)
	SetupRoutes(f.app, cfg, Stores{
		Users:     f.users,
		Subjects:  new(mocks.SubjectRepository),
		Questions: new(mocks.QuestionRepository),
		Results:   f.results,
		Support:   new(mocks.SupportRepository),
	}, f.status)
	return f
}

func bearer(t *testing.T, role string) (uuid.UUID, string) {
	t.Helper()
	uid := uuid.New()
	tok, err := helperAuth.IssueToken(secret, uid, role, time.Hour)
	require.NoError(t, err)
	return uid, "Bearer " + tok
}

func (f fixture) do(t *testing.T, method, path, authz, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestBanner(t *testing.T) {
	f := newFixture(t)
	status, body := f.do(t, fiber.MethodGet, "/", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Student Learning Platform API", body["message"])
	assert.Equal(t, "/api", body["apiBase"])
}

func TestHealth_ReportsDB(t *testing.T) {
	f := newFixture(t)
	f.status.Set(errors.New("connection refused"))

	status, body := f.do(t, fiber.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	db := body["db"].(map[string]any)
	assert.Equal(t, false, db["connected"])
	assert.Equal(t, "connection refused", db["error"])

	status, body = f.do(t, fiber.MethodGet, "/api/results/me", "", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "SERVICE_UNAVAILABLE", body["error_code"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t)
	for _, tc := range []struct{ method, path string }{
		{fiber.MethodPost, "/api/results"},
		{fiber.MethodGet, "/api/results/me"},
		{fiber.MethodDelete, "/api/results/me"},
		{fiber.MethodGet, "/api/analytics/me"},
		{fiber.MethodGet, "/api/users/me"},
		{fiber.MethodGet, "/api/subjects"},
		{fiber.MethodPost, "/api/support"},
		{fiber.MethodGet, "/api/admin/analytics"},
		{fiber.MethodGet, "/api/admin/questions"},
		{fiber.MethodGet, "/api/admin/subjects"},
	} {
		status, body := f.do(t, tc.method, tc.path, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, status, tc.path)
		assert.Equal(t, constants.ErrMissingToken, body["message"], tc.path)
	}

	status, body := f.do(t, fiber.MethodGet, "/api/results/me", "Bearer not.a.jwt", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constants.ErrInvalidToken, body["message"])

	f.results.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestAdminRoutesForbidStudents(t *testing.T) {
	f := newFixture(t)
	_, authz := bearer(t, constants.RoleStudent)

	for _, path := range []string{"/api/admin/analytics", "/api/admin/questions", "/api/admin/subjects"} {
		status, body := f.do(t, fiber.MethodGet, path, authz, "")
		assert.Equal(t, fiber.StatusForbidden, status, path)
		assert.Equal(t, constants.ErrAdminOnly, body["message"], path)
	}
	f.results.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestAuthRoutesArePublic(t *testing.T) {
	f := newFixture(t)
	f.users.On("FindByEmail", mock.Anything, "nobody@x.io").Return(nil, helper.ErrNotFound)

	status, body := f.do(t, fiber.MethodPost, "/api/auth/login", "", `{"email":"nobody@x.io","password":"secret1"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, constants.ErrInvalidLogin, body["message"])
}

func TestStudentFlow(t *testing.T) {
	f := newFixture(t)
	uid, authz := bearer(t, constants.RoleStudent)
	f.results.On("ListByUser", mock.Anything, uid).Return([]resultModel.ResultModel{
		{ID: uuid.New(), UserID: uid, Subject: "python", Score: 9, Total: 10, CreatedAt: time.Now()},
	}, nil)

	status, body := f.do(t, fiber.MethodGet, "/api/analytics/me", authz, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["subjects"], 1)
}

func TestUnknownRoute404(t *testing.T) {
	f := newFixture(t)
	status, body := f.do(t, fiber.MethodGet, "/api/nope", "", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}
