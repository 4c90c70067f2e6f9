package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubuntuhub/docs"
	"ubuntuhub/internal/config"
)

func TestConfigureSwagger_IgnoresRequestHost(t *testing.T) {
	configureSwagger(&config.AppConfig{AppHost: "hub.example.org", AppScheme: "https"})

	app := fiber.New()
	app.Get("/swagger/*", swagger.HandlerDefault)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	req.Host = "proxy.internal"
	req.Header.Set("X-Forwarded-Proto", "http")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"host": "hub.example.org"`)
	assert.Equal(t, "hub.example.org", docs.SwaggerInfo.Host)
	assert.Equal(t, []string{"https"}, docs.SwaggerInfo.Schemes)
}
