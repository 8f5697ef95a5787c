package route

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

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/quizzes/results/model"
	helper "quizku_backend/internals/helpers"
	authMW "quizku_backend/internals/middlewares/auth"
	"quizku_backend/internals/mocks"
)

func newApp(uid uuid.UUID, repo *mocks.ResultRepository) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ResultRoutes(app.Group("/api"), mocks.StubAuth(uid, constants.RoleStudent), repo)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestCreateResult(t *testing.T) {
	uid := uuid.New()
	repo := new(mocks.ResultRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.ResultModel) bool {
		return r.UserID == uid && r.Subject == "Python" && r.Score == 8 && r.Total == 10
	})).Return(nil)

	status, body := do(t, newApp(uid, repo), fiber.MethodPost, "/api/results", `{"subject":" Python ","score":8,"total":10}`)
	require.Equal(t, fiber.StatusCreated, status)
	result := body["result"].(map[string]any)
	assert.Equal(t, uid.String(), result["userId"])
	assert.Equal(t, float64(8), result["score"])
}

func TestCreateResult_ScoreAboveTotalAccepted(t *testing.T) {
	repo := new(mocks.ResultRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	status, _ := do(t, newApp(uuid.New(), repo), fiber.MethodPost, "/api/results", `{"subject":"DBMS","score":12,"total":10}`)
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestCreateResult_Validation(t *testing.T) {
	repo := new(mocks.ResultRepository)
	app := newApp(uuid.New(), repo)

	cases := []string{
		`{"subject":"","score":1,"total":1}`,
		`{"subject":"Python","score":-1,"total":10}`,
		`{"subject":"Python","score":1,"total":0}`,
		`{"subject":"Python","total":10}`,
	}
	for _, body := range cases {
		status, resp := do(t, app, fiber.MethodPost, "/api/results", body)
		assert.Equal(t, fiber.StatusBadRequest, status, body)
		assert.Equal(t, "VALIDATION_ERROR", resp["error_code"], body)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateResult_MalformedBody(t *testing.T) {
	repo := new(mocks.ResultRepository)
	app := newApp(uuid.New(), repo)

	cases := []string{
		`{"subject":"Python","score":"8","total":10}`,
		`{"subject":"Python","score":8.5,"total":10}`,
		`not json`,
	}
	for _, body := range cases {
		status, resp := do(t, app, fiber.MethodPost, "/api/results", body)
		assert.Equal(t, fiber.StatusBadRequest, status, body)
		assert.Equal(t, "VALIDATION_ERROR", resp["error_code"], body)
		assert.Contains(t, resp["errors"], "body", body)
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetMine_NonUUIDIsNotFound(t *testing.T) {
	repo := new(mocks.ResultRepository)

	status, body := do(t, newApp(uuid.New(), repo), fiber.MethodGet, "/api/results/me/not-a-uuid", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])
	assert.Equal(t, "Result not found", body["message"])
	repo.AssertNotCalled(t, "FindByIDForUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestListMine(t *testing.T) {
	uid := uuid.New()
	now := time.Now()
	repo := new(mocks.ResultRepository)
	repo.On("ListByUser", mock.Anything, uid).Return([]model.ResultModel{
		{ID: uuid.New(), UserID: uid, Subject: "Python", Score: 9, Total: 10, CreatedAt: now},
		{ID: uuid.New(), UserID: uid, Subject: "Python", Score: 8, Total: 10, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	status, body := do(t, newApp(uid, repo), fiber.MethodGet, "/api/results/me", "")
	require.Equal(t, fiber.StatusOK, status)
	results := body["results"].([]any)
	require.Len(t, results, 2)
	assert.Equal(t, float64(9), results[0].(map[string]any)["score"])
}

func TestListMine_Empty(t *testing.T) {
	uid := uuid.New()
	repo := new(mocks.ResultRepository)
	repo.On("ListByUser", mock.Anything, uid).Return([]model.ResultModel{}, nil)

	status, body := do(t, newApp(uid, repo), fiber.MethodGet, "/api/results/me", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []any{}, body["results"])
}

func TestGetMine_NotOwned(t *testing.T) {
	uid, id := uuid.New(), uuid.New()
	repo := new(mocks.ResultRepository)
	repo.On("FindByIDForUser", mock.Anything, id, uid).Return(nil, helper.ErrNotFound)

	status, body := do(t, newApp(uid, repo), fiber.MethodGet, "/api/results/me/"+id.String(), "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Result not found", body["message"])
}

func TestDeleteMine(t *testing.T) {
	uid := uuid.New()
	repo := new(mocks.ResultRepository)
	repo.On("DeleteByUser", mock.Anything, uid).Return(int64(3), nil)

	status, body := do(t, newApp(uid, repo), fiber.MethodDelete, "/api/results/me", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(3), body["deletedCount"])
}

func TestStoreDownIs503(t *testing.T) {
	uid := uuid.New()
	repo := new(mocks.ResultRepository)
	repo.On("ListByUser", mock.Anything, uid).Return(nil, errors.New("server selection timeout"))

	status, body := do(t, newApp(uid, repo), fiber.MethodGet, "/api/results/me", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "SERVICE_UNAVAILABLE", body["error_code"])
}

// Tanpa token: 401 dan repository tidak tersentuh.
func TestRealAuth_RejectsBeforeStore(t *testing.T) {
	repo := new(mocks.ResultRepository)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	ResultRoutes(app.Group("/api"), authMW.AuthJWT(authMW.AuthJWTOpts{Secret: "s"}), repo)

	for _, tc := range []struct{ method, path string }{
		{fiber.MethodPost, "/api/results"},
		{fiber.MethodGet, "/api/results/me"},
		{fiber.MethodDelete, "/api/results/me"},
	} {
		status, body := do(t, app, tc.method, tc.path, "")
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, "UNAUTHENTICATED", body["error_code"])
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "DeleteByUser", mock.Anything, mock.Anything)
}
