package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"gradescan/internal/logging"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_submissions",
		SQL: `CREATE TABLE IF NOT EXISTS submissions (
  id            UUID        PRIMARY KEY,
  original_name TEXT        NOT NULL,
  stored_name   TEXT        NOT NULL,
  size          BIGINT      NOT NULL CHECK (size >= 0),
  status        TEXT        NOT NULL CHECK (status IN ('accepted', 'rejected')),
  reason        TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_submissions_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions (created_at);`,
	},
	{
		Name: "create_index_submissions_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_submissions_status ON submissions (status);`,
	},
}

// EnsureMigrated checks if the 'submissions' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger *slog.Logger, dbHost string) error {
	if logger == nil {
		logger = logging.Nop()
	}
	start := time.Now()
	log := logger.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	query := "SELECT to_regclass('public.submissions') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success", "status", "success", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
