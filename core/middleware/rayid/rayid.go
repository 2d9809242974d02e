package rayid

import (
	"card-assets/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName carries the ray id on requests and responses.
const HeaderName = "X-Ray-ID"

// New returns a middleware that assigns every request a ray id. An incoming
// X-Ray-ID header is reused so ids can be correlated across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
