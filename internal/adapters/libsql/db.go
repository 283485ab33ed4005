// Package libsql stores the local evaluation history in a libsql database
// under the XDG data directory.
package libsql

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/fairai-labs/fairctl/internal/util"
)

const dbFileName = "history.db"

// Open opens the history database at the given path, or at the default XDG
// location when path is empty, and applies migrations.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		dir, err := util.DataDir()
		if err != nil {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		path = filepath.Join(dir, dbFileName)
	}

	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the history schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS evaluation_runs (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	model_file TEXT NOT NULL,
	threshold REAL NOT NULL,
	status TEXT NOT NULL,
	message TEXT NOT NULL DEFAULT '',
	metrics TEXT NOT NULL DEFAULT '{}',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_evaluation_runs_created_at ON evaluation_runs(created_at);
`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return nil
}
