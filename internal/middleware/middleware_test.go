package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedValidator struct {
	identity *services.Identity
	err      error
	calls    *int
}

func (f fixedValidator) ValidateSession(context.Context, string, []string) (*services.Identity, error) {
	*f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.identity == nil {
		return nil, services.ErrInvalidSession
	}
	return f.identity, nil
}

func errorStatus(c *fiber.Ctx, err error) error {
	if cerr, ok := err.(*types.CustomError); ok {
		return c.Status(cerr.Code).SendString(cerr.Type)
	}
	return fiber.DefaultErrorHandler(c, err)
}

func TestVersionMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Api-Version", "1.0")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, APIVersion, resp.Header.Get("X-Api-Version"))
}

func TestRequireUserSetsIdentity(t *testing.T) {
	calls := 0
	auth := NewAuth(fixedValidator{identity: &services.Identity{ID: "u-1"}, calls: &calls}, nil, "")

	app := fiber.New(fiber.Config{ErrorHandler: errorStatus})
	app.Get("/", auth.RequireAdmin(), func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		require.True(t, ok)
		return c.SendString(identity.ID)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, calls)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, calls, "a missing cookie never reaches the provider")
}

func TestRequireUserRejectsInvalidSession(t *testing.T) {
	calls := 0
	auth := NewAuth(fixedValidator{calls: &calls}, nil, "admin")

	app := fiber.New(fiber.Config{ErrorHandler: errorStatus})
	app.Get("/", auth.RequireAdmin(), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminProviderOutageIsUnavailable(t *testing.T) {
	calls := 0
	outage := errors.New("authorizer unreachable: connection refused")
	auth := NewAuth(fixedValidator{err: outage, calls: &calls}, nil, "admin")

	app := fiber.New(fiber.Config{ErrorHandler: errorStatus})
	app.Get("/", auth.RequireAdmin(), func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "s"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, 1, calls, "an outage is not retried without roles")
}
