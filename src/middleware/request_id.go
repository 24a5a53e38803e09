package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the locals key the request logger reads.
const RequestIDKey = "requestId"

// RequestID assigns each request an id, honoring one supplied by the
// client in X-Request-ID.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(RequestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)

		return c.Next()
	}
}
