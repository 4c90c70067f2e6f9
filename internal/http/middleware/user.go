package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// UserIDHeader carries the caller's identity, set by the gateway in front of the API.
	UserIDHeader = "X-User-ID"
	// UserIDLocalKey holds the normalised user ID in Fiber's context locals.
	UserIDLocalKey = "user_id"
)

// UserID reads X-User-ID. A missing header leaves the request anonymous; a value that
// is not a UUID is rejected with 400 and the given handler's envelope.
func UserID(reject func(c *fiber.Ctx) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(UserIDHeader)
		if raw == "" {
			return c.Next()
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return reject(c)
		}
		c.Locals(UserIDLocalKey, id.String())
		return c.Next()
	}
}

// UserIDFromCtx returns the ID stored by UserID, or "" for anonymous requests.
func UserIDFromCtx(c *fiber.Ctx) string {
	s, _ := c.Locals(UserIDLocalKey).(string)
	return s
}
