// Package storage persists the dashboard's small key/value session state in SQLite.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db     *sql.DB
	logger *slog.Logger
	now    func() string
}

func New(ctx context.Context, dbPath string, logger *slog.Logger) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	repo := &Repository{db: db, logger: logger, now: nowRFC3339}
	if err := repo.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Ping reports whether the database is still usable; /healthz relies on it.
func (r *Repository) Ping(ctx context.Context) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("storage not initialized")
	}
	return r.db.PingContext(ctx)
}

func (r *Repository) migrate(ctx context.Context) error {
	statements := []string{
		`PRAGMA journal_mode = WAL;`,
		`CREATE TABLE IF NOT EXISTS session_kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}

	for _, stmt := range statements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate failed: %w", err)
		}
	}
	return r.dropBlankKeys(ctx)
}

// dropBlankKeys removes rows holding only whitespace. A blank token or address
// is never valid and would shadow the defaults on restore.
func (r *Repository) dropBlankKeys(ctx context.Context) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM session_kv WHERE TRIM(value) = '';`)
	if err != nil {
		return fmt.Errorf("blank key cleanup failed: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows > 0 && r.logger != nil {
		r.logger.Info("removed blank session keys", "rows", rows)
	}
	return nil
}
