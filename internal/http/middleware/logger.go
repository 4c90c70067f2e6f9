package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"ubuntuhub/internal/logging"
)

// Logger is a middleware that logs each HTTP request as one JSON line through the
// process-wide logger. Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
func Logger() fiber.Handler {
	return loggerWith(logging.Default())
}

// LoggerWithWriter is Logger writing to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return loggerWith(logging.New(w, loc))
}

func loggerWith(l *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Collect fields after handler executed to capture final status
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		entry := map[string]any{
			"request_id": RequestIDFromCtx(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
			"level":      levelFor(status),
		}
		if uid := UserIDFromCtx(c); uid != "" {
			entry["user_id"] = uid
		}
		l.Log(entry)

		return err
	}
}

func levelFor(status int) string {
	switch {
	case status >= fiber.StatusInternalServerError:
		return "error"
	case status >= fiber.StatusBadRequest:
		return "warn"
	default:
		return "info"
	}
}
