package handler

import (
	"github.com/gofiber/fiber/v2"

	"gradescan/internal/mockdata"
)

const (
	msgTimetableGenerated = "Timetable generated successfully!"
	msgTimetableFailed    = "Could not generate timetable."
	msgDashboardFailed    = "Could not generate dashboard data."
)

// GenerateTimetable godoc
// @Summary Generate a mock weekly timetable
// @Tags mock
// @Produce json
// @Success 200 {object} timetableResponse
// @Failure 500 {object} errorResponse
// @Router /generate_timetable [post]
func GenerateTimetable(gen mockdata.TimetableGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tt, err := gen.Generate(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, msgTimetableFailed)
		}
		return writeData(c, msgTimetableGenerated, tt)
	}
}

// StudentDashboard godoc
// @Summary Get mock student dashboard data
// @Tags mock
// @Produce json
// @Success 200 {object} dashboardResponse
// @Failure 500 {object} errorResponse
// @Router /get_student_dashboard [get]
func StudentDashboard(gen mockdata.DashboardGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := gen.Generate(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, msgDashboardFailed)
		}
		return writeData(c, "", d)
	}
}
