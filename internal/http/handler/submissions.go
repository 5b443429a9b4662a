package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gradescan/internal/service"
)

// ListSubmissions godoc
// @Summary List recorded uploads, newest first
// @Tags submissions
// @Produce json
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} submissionsResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /submissions [get]
func ListSubmissions(svc service.SubmissionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Could not list submissions.")
		}
		return writeData(c, "", res)
	}
}
