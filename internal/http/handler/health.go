package handler

import (
	"github.com/gofiber/fiber/v2"

	"gradescan/internal/database"
	"gradescan/internal/storage"
)

// HealthCheck godoc
// @Summary Readiness: upload directory writable and database reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorResponse
// @Router /health [get]
func HealthCheck(store storage.DocumentStore, db database.Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if err := store.Check(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "upload directory unavailable")
		}
		if err := database.Check(ctx, db); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
