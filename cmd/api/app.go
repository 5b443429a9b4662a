package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"gradescan/docs"
	"gradescan/internal/config"
	"gradescan/internal/database"
	"gradescan/internal/database/migration"
	handlers "gradescan/internal/http/handler"
	"gradescan/internal/http/middleware"
	"gradescan/internal/mockdata"
	"gradescan/internal/repository/postgres"
	"gradescan/internal/scoring"
	"gradescan/internal/service"
	"gradescan/internal/storage"
	"gradescan/internal/validator"
)

// components are the long lived collaborators built from configuration.
type components struct {
	store       *storage.LocalStore
	upload      service.UploadService
	submissions service.SubmissionService
	db          *sql.DB
	registry    *prometheus.Registry
}

func (c *components) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// pinger returns the database as a health dependency, or nil when none is configured.
func (c *components) pinger() database.Pinger {
	if c.db == nil {
		return nil
	}
	return c.db
}

// buildComponents wires storage, validation, scoring and the optional ledger and archive.
func buildComponents(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*components, error) {
	store, err := storage.NewLocalStore(cfg.Upload, logger)
	if err != nil {
		return nil, fmt.Errorf("init upload store: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := service.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register upload metrics: %w", err)
	}

	c := &components{store: store, registry: reg}
	opts := []service.Option{
		service.WithLogger(logger),
		service.WithMetrics(metrics),
	}

	var archive storage.ObjectStore
	if cfg.Upload.Retention == config.RetentionArchive {
		archive, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("init archive storage: %w", err)
		}
	}
	opts = append(opts, service.WithRetention(cfg.Upload.Retention, archive))

	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		repo := postgres.NewSubmissionPostgres(db)
		opts = append(opts, service.WithLedger(repo))
		c.db = db
		c.submissions = service.NewSubmissionService(repo)
	}

	c.upload = service.NewUploadService(
		store,
		validator.NewPDFValidator(cfg.Upload.AllowedExtensions, logger),
		scoring.NewRandomSimulator(cfg.Scoring.MaxScore, nil),
		opts...,
	)

	logger.Info("components_ready",
		"upload_dir", store.Dir(),
		"retention", cfg.Upload.Retention,
		"ledger_enabled", c.db != nil,
	)
	return c, nil
}

// newApp builds the Fiber app with global middleware and routes.
func newApp(cfg *config.AppConfig, c *components, logger *slog.Logger, tracing bool) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Upload.MaxBytes,
	})

	prom, err := middleware.NewPrometheusMiddleware(c.registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	app.Use(recover.New())
	// RequestID adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(prom.Handler())
	app.Use(middleware.Tracing(tracing))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORS.AllowOrigins}))

	handlers.RegisterRoutes(app, handlers.Deps{
		Upload:      c.upload,
		Timetable:   mockdata.NewRandomTimetable(nil),
		Dashboard:   mockdata.NewRandomDashboard(nil),
		Store:       c.store,
		Submissions: c.submissions,
		DB:          c.pinger(),
		Gatherer:    c.registry,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(ctx *fiber.Ctx) error {
		scheme := ctx.Protocol()
		if proto := ctx.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = ctx.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(ctx)
	})

	return app, nil
}
