package middlewares

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner_backend/internals/configs"
)

func TestSetupMiddlewares(t *testing.T) {
	app := fiber.New()
	SetupMiddlewares(app, configs.Config{CORSOrigins: []string{"http://localhost:5173"}})
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// panic jadi 500, bukan crash
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "req-1")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Header.Get("X-Request-ID"))
}

func TestAccessLogger(t *testing.T) {
	tests := []struct {
		name string
		tz   string
	}{
		{"default zone", ""},
		{"configured zone", "Asia/Jakarta"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			app := fiber.New()
			app.Use(RequestContext(0))
			app.Use(AccessLogger(configs.Config{LogTimeZone: tt.tz}, &out))
			app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-Request-ID", "abc")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

			line := out.String()
			assert.Contains(t, line, "abc GET /ping - 204")
		})
	}
}
