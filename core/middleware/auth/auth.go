package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the header carrying the API key.
const HeaderName = "X-API-Key"

// Config configures the API key middleware.
type Config struct {
	// ApiKey is the expected key. Empty disables the check.
	ApiKey string
	// PublicPaths are path prefixes that skip the check.
	PublicPaths []string
}

// New returns a middleware rejecting requests without the configured API key.
// The key is read from X-API-Key or an "Authorization: Bearer" header.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || isPublic(c.Path(), cfg.PublicPaths) {
			return c.Next()
		}

		key := c.Get(HeaderName)
		if key == "" {
			if bearer, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "); ok {
				key = bearer
			}
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Next()
	}
}

func isPublic(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
