// Package migration creates the submission and signup tables on first start.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_applications",
		SQL: `CREATE TABLE IF NOT EXISTS applications (
  id               UUID        PRIMARY KEY,
  application_id   TEXT        NOT NULL,
  fullname         TEXT        NOT NULL,
  age              INTEGER     NOT NULL CHECK (age BETWEEN 15 AND 100),
  graduation_year  INTEGER     NOT NULL,
  experience       TEXT        NOT NULL,
  skills           TEXT        NOT NULL DEFAULT '',
  cv_original_name TEXT        NOT NULL,
  cv_stored_name   TEXT        NOT NULL UNIQUE,
  cv_size          BIGINT      NOT NULL CHECK (cv_size >= 0),
  cv_content_type  TEXT        NOT NULL,
  cv_path          TEXT        NOT NULL,
  submitted_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_applications_submitted_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_applications_submitted_at ON applications (submitted_at);`,
	},
	{
		Name: "create_table_signup_accounts",
		SQL: `CREATE TABLE IF NOT EXISTS signup_accounts (
  id            UUID        PRIMARY KEY,
  fullname      TEXT        NOT NULL,
  email         TEXT        NOT NULL,
  password_hash TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_unique_index_signup_accounts_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS uq_signup_accounts_email ON signup_accounts (lower(email));`,
	},
}

// EnsureMigrated runs every step unless the sentinel table already exists.
// Progress is logged as structured events on log.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("status", "starting"))

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.signup_accounts') IS NOT NULL").Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("db_migration_step",
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("status", "success"),
		zap.Int("steps", len(steps)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return nil
}
