package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gradescan/internal/database"
	"gradescan/internal/mockdata"
	"gradescan/internal/service"
	"gradescan/internal/storage"
)

// Deps are the collaborators the HTTP routes call into.
type Deps struct {
	Upload    service.UploadService
	Timetable mockdata.TimetableGenerator
	Dashboard mockdata.DashboardGenerator
	Store     storage.DocumentStore

	// Submissions is nil when no database is configured; /submissions is then not routed.
	Submissions service.SubmissionService
	// DB is nil when no database is configured.
	DB database.Pinger
	// Gatherer serves /metrics; nil skips the route.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Post("/upload_and_score", UploadAndScore(d.Upload))
	app.Post("/generate_timetable", GenerateTimetable(d.Timetable))
	app.Get("/get_student_dashboard", StudentDashboard(d.Dashboard))

	if d.Submissions != nil {
		app.Get("/submissions", ListSubmissions(d.Submissions))
	}

	app.Get("/health", HealthCheck(d.Store, d.DB))
	app.Get("/healthz", LivenessProbe())

	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
}
