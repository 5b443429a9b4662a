package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gradescan/internal/config"
	"gradescan/internal/logging"
	"gradescan/internal/otel"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.String("port", "", "Listen port (overrides PORT)")
	f.String("upload-dir", "", "Upload directory (overrides UPLOAD_DIR)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if v, _ := cmd.Flags().GetString("port"); v != "" {
		cfg.Port = v
	}
	if v, _ := cmd.Flags().GetString("upload-dir"); v != "" {
		cfg.Upload.Dir = v
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, logging.Location(cfg.Log.TimeZone))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, tracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	c, err := buildComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup_failed", "error", err.Error())
		return err
	}
	defer c.Close()

	app, err := newApp(cfg, c, logger, tracing)
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server_listening", "addr", ":"+cfg.Port, "host", cfg.AppHost)
		errc <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if err != nil {
			logger.Error("server_failed", "error", err.Error())
		}
		return err
	case <-ctx.Done():
		logger.Info("server_shutdown")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
