package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/assets/url", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	cfg := Config{ApiKey: "secret", PublicPaths: []string{"/health"}}

	tests := []struct {
		name   string
		path   string
		header string
		value  string
		want   int
	}{
		{"MissingKey", "/assets/url", "", "", fiber.StatusUnauthorized},
		{"WrongKey", "/assets/url", HeaderName, "nope", fiber.StatusUnauthorized},
		{"HeaderKey", "/assets/url", HeaderName, "secret", fiber.StatusOK},
		{"BearerKey", "/assets/url", fiber.HeaderAuthorization, "Bearer secret", fiber.StatusOK},
		{"AuthorizationWithoutScheme", "/assets/url", fiber.HeaderAuthorization, "secret", fiber.StatusUnauthorized},
		{"BasicScheme", "/assets/url", fiber.HeaderAuthorization, "Basic secret", fiber.StatusUnauthorized},
		{"PublicPath", "/health", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := newApp(cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_DisabledWithoutKey(t *testing.T) {
	resp, err := newApp(Config{}).Test(httptest.NewRequest("GET", "/assets/url", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
