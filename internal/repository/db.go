package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	DSN         string
	DialTimeout time.Duration
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS extract_job (
	id             TEXT PRIMARY KEY,
	batch_id       TEXT NOT NULL,
	source_path    TEXT NOT NULL,
	status         TEXT NOT NULL,
	error_message  TEXT NOT NULL DEFAULT '',
	invoice_no     TEXT NOT NULL DEFAULT '',
	total          TEXT NOT NULL DEFAULT '',
	extracted_json TEXT NOT NULL DEFAULT '',
	started_at     TIMESTAMP NOT NULL,
	finished_at    TIMESTAMP
)`

// Open connects to the ledger database, selecting the driver from the DSN:
// postgres DSNs go through pgx, everything else is treated as a sqlite file.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	driver := driverFor(cfg.DSN)
	logger.Info("connecting to ledger", "driver", driver, "dsn", cfg.DSN)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open ledger", "error", err)
		return nil, err
	}

	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to ping ledger", "error", err)
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		logger.Error("failed to migrate ledger schema", "error", err)
		_ = db.Close()
		return nil, err
	}

	logger.Info("ledger ready")
	return db, nil
}

func driverFor(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "pgx"
	}
	return "sqlite"
}

// Close closes the ledger connection gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close ledger", "error", err)
		return
	}
	logger.Info("ledger closed")
}

// HealthCheck pings the ledger to catch DSN issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging ledger")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}
