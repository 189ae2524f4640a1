package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"riskgate/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewApp verifies that NewApp creates a usable Fiber application.
func TestNewApp(t *testing.T) {
	logger.Init("development", "error")

	app := NewApp("riskgate-test")
	require.NotNil(t, app)

	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req := httptest.NewRequest("GET", "/ping", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
}

// TestNewApp_Metrics verifies the Prometheus endpoint is registered.
func TestNewApp_Metrics(t *testing.T) {
	logger.Init("development", "error")

	app := NewApp("riskgate-test")

	req := httptest.NewRequest("GET", "/metrics", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
