package middleware

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

// Noop is a minimal middleware that simply calls the next handler.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

// Tracing returns the otelfiber server span middleware, or Noop when tracing is off.
// Probe and scrape endpoints are never traced.
func Tracing(enabled bool) fiber.Handler {
	if !enabled {
		return Noop()
	}
	return otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool {
			switch c.Path() {
			case "/metrics", "/healthz", "/health":
				return true
			}
			return false
		}),
	)
}
