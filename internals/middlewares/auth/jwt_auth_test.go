package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "quizku_backend/internals/helpers"
	helperAuth "quizku_backend/internals/helpers/auth"
)

const secret = "middleware-secret"

func setupApp(opts AuthJWTOpts, reached *bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	handler := func(c *fiber.Ctx) error {
		*reached = true
		uid, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		return c.SendString(uid.String())
	}
	app.Get("/me", AuthJWT(opts), handler)
	app.Get("/admin", RequireAdmin(opts), handler)
	return app
}

func token(t *testing.T, role string, ttl time.Duration) (uuid.UUID, string) {
	uid := uuid.New()
	raw, err := helperAuth.IssueToken(secret, uid, role, ttl)
	require.NoError(t, err)
	return uid, raw
}

func get(t *testing.T, app *fiber.App, path, authz string) int {
	req := httptest.NewRequest("GET", path, nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWT(t *testing.T) {
	_, studentTok := token(t, "student", time.Hour)
	_, expiredTok := token(t, "student", -time.Minute)

	cases := []struct {
		name    string
		authz   string
		status  int
		reached bool
	}{
		{"no header", "", 401, false},
		{"non bearer scheme", "Basic abc", 401, false},
		{"garbage token", "Bearer abc.def.ghi", 401, false},
		{"expired", "Bearer " + expiredTok, 401, false},
		{"valid", "Bearer " + studentTok, 200, true},
		{"valid lowercase scheme", "bearer " + studentTok, 200, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached := false
			app := setupApp(AuthJWTOpts{Secret: secret}, &reached)
			assert.Equal(t, tc.status, get(t, app, "/me", tc.authz))
			assert.Equal(t, tc.reached, reached)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	_, studentTok := token(t, "student", time.Hour)
	_, adminTok := token(t, "admin", time.Hour)

	t.Run("no token → 401", func(t *testing.T) {
		reached := false
		app := setupApp(AuthJWTOpts{Secret: secret}, &reached)
		assert.Equal(t, 401, get(t, app, "/admin", ""))
		assert.False(t, reached)
	})

	t.Run("student → 403", func(t *testing.T) {
		reached := false
		app := setupApp(AuthJWTOpts{Secret: secret}, &reached)
		assert.Equal(t, 403, get(t, app, "/admin", "Bearer "+studentTok))
		assert.False(t, reached)
	})

	t.Run("admin → 200", func(t *testing.T) {
		reached := false
		app := setupApp(AuthJWTOpts{Secret: secret}, &reached)
		assert.Equal(t, 200, get(t, app, "/admin", "Bearer "+adminTok))
		assert.True(t, reached)
	})
}

func TestRequireAdmin_StrictRole(t *testing.T) {
	_, adminTok := token(t, "admin", time.Hour)

	t.Run("demoted in directory → 403", func(t *testing.T) {
		reached := false
		opts := AuthJWTOpts{Secret: secret, RoleChecker: func(ctx context.Context, id uuid.UUID) (string, error) {
			return "student", nil
		}}
		app := setupApp(opts, &reached)
		assert.Equal(t, 403, get(t, app, "/admin", "Bearer "+adminTok))
		assert.False(t, reached)
	})

	t.Run("user gone → 401", func(t *testing.T) {
		reached := false
		opts := AuthJWTOpts{Secret: secret, RoleChecker: func(ctx context.Context, id uuid.UUID) (string, error) {
			return "", helper.ErrNotFound
		}}
		app := setupApp(opts, &reached)
		assert.Equal(t, 401, get(t, app, "/admin", "Bearer "+adminTok))
	})

	t.Run("store down → 503", func(t *testing.T) {
		reached := false
		opts := AuthJWTOpts{Secret: secret, RoleChecker: func(ctx context.Context, id uuid.UUID) (string, error) {
			return "", errors.New("connection refused")
		}}
		app := setupApp(opts, &reached)
		assert.Equal(t, 503, get(t, app, "/admin", "Bearer "+adminTok))
	})
}

func TestAuthJWT_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{}) })
}
