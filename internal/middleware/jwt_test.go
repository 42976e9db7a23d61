package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/bioscizone/bioscizone-api/internal/auth"
	"github.com/bioscizone/bioscizone-api/internal/models"
)

func newJWTTestApp(t *testing.T) (*fiber.App, *auth.TokenService) {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", "HS256")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", JWTProtected(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": c.Locals(LocalsUsername),
			"role":     c.Locals(LocalsUserRole),
		})
	})
	return app, tokens
}

func TestJWTProtectedAcceptsValidToken(t *testing.T) {
	app, tokens := newJWTTestApp(t)

	token, err := tokens.Issue("alice", models.RoleSuperadmin, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTProtectedRejectsMissingHeader(t *testing.T) {
	app, _ := newJWTTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsNonBearerScheme(t *testing.T) {
	app, _ := newJWTTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsGarbageToken(t *testing.T) {
	app, _ := newJWTTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsForeignSignature(t *testing.T) {
	app, _ := newJWTTestApp(t)

	foreign, err := auth.NewTokenService("other-secret", "HS256")
	require.NoError(t, err)
	token, err := foreign.Issue("alice", models.RoleAdmin, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
