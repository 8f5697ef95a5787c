package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/quizzes/results/model"
	userModel "quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
	"quizku_backend/internals/mocks"
)

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestMe_LatestPerSubject(t *testing.T) {
	uid := uuid.New()
	now := time.Now().UTC()
	results := new(mocks.ResultRepository)
	results.On("ListByUser", mock.Anything, uid).Return([]model.ResultModel{
		{ID: uuid.New(), UserID: uid, Subject: "python", Score: 9, Total: 10, CreatedAt: now},
		{ID: uuid.New(), UserID: uid, Subject: "dbms", Score: 5, Total: 5, CreatedAt: now.Add(-time.Minute)},
		{ID: uuid.New(), UserID: uid, Subject: "python", Score: 8, Total: 10, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	ctrl := NewAnalyticsController(results, new(mocks.UserRepository))
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Get("/me", mocks.StubAuth(uid, constants.RoleStudent), ctrl.Me)

	status, body := get(t, app, "/me")
	require.Equal(t, fiber.StatusOK, status)
	subjects := body["subjects"].([]any)
	require.Len(t, subjects, 2)
	assert.Equal(t, float64(9), subjects[0].(map[string]any)["score"])
}

func TestAdmin_Overview(t *testing.T) {
	s := userModel.UserModel{ID: uuid.New(), Name: "Asha", RegisterNumber: "R1", Department: "CSE", Role: constants.RoleStudent}
	adm := userModel.UserModel{ID: uuid.New(), Name: "Root", Role: constants.RoleAdmin}
	now := time.Now().UTC()
	all := []model.ResultModel{
		{ID: uuid.New(), UserID: adm.ID, Subject: "ai", Score: 4, Total: 4, CreatedAt: now},
		{ID: uuid.New(), UserID: s.ID, Subject: "python", Score: 8, Total: 10, CreatedAt: now.Add(-time.Minute)},
	}

	users := new(mocks.UserRepository)
	results := new(mocks.ResultRepository)
	users.On("CountByRole", mock.Anything, constants.RoleStudent).Return(int64(1), nil)
	results.On("ListAll", mock.Anything).Return(all, nil)
	results.On("ListRecent", mock.Anything, 20).Return(all, nil)
	users.On("FindByIDs", mock.Anything, mock.Anything).Return([]userModel.UserModel{s, adm}, nil)

	ctrl := NewAnalyticsController(results, users)
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Get("/admin", ctrl.Admin)

	status, body := get(t, app, "/admin")
	require.Equal(t, fiber.StatusOK, status)

	kpis := body["kpis"].(map[string]any)
	assert.Equal(t, float64(1), kpis["students"])
	assert.Equal(t, float64(2), kpis["attempts"])
	assert.Equal(t, float64(90), kpis["avgScorePct"])

	assert.Len(t, body["bySubject"], 2)
	top := body["topStudents"].([]any)
	require.Len(t, top, 1)
	assert.Equal(t, "Asha", top[0].(map[string]any)["name"])
	recent := body["recentAttempts"].([]any)
	require.Len(t, recent, 1)
	assert.Equal(t, "R1", recent[0].(map[string]any)["user"].(map[string]any)["registerNumber"])
}

func TestAdmin_AllOrNothing(t *testing.T) {
	users := new(mocks.UserRepository)
	results := new(mocks.ResultRepository)
	users.On("CountByRole", mock.Anything, constants.RoleStudent).Return(int64(1), nil)
	results.On("ListAll", mock.Anything).Return(nil, errors.New("cursor killed"))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Get("/admin", NewAnalyticsController(results, users).Admin)

	status, body := get(t, app, "/admin")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.NotContains(t, body, "kpis")
}
