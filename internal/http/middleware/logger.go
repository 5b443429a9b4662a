package middleware

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"gradescan/internal/logging"
)

// Logger is a middleware that logs each HTTP request as one JSON line.
// Fields:
// - request_id (taken from context locals set by RequestID middleware)
// - method
// - path
// - status
// - latency (in milliseconds, as float)
func Logger(l *slog.Logger) fiber.Handler {
	if l == nil {
		l = logging.Nop()
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		l.LogAttrs(c.UserContext(), slog.LevelInfo, "http_request",
			slog.String("request_id", RequestIDFromCtx(c)),
			slog.String("method", c.Method()),
			// path only, no query string
			slog.String("path", c.Path()),
			slog.Int("status", statusOf(c, err)),
			slog.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		)

		return err
	}
}

// LoggerWithWriter builds an access logger that writes to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logging.New(w, "info", loc))
}

// statusOf returns the status the global error handler will send for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
