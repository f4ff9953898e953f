// Package database stores settings and completed-session history in a local
// SQLite file.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite connection.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if necessary) the database at path and ensures the
// schema is current.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			minutes INTEGER NOT NULL,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	d.migrate(ctx)
	return nil
}

// migrate applies additive schema changes for databases created by older
// builds. Failures are expected when the column already exists.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE sessions ADD COLUMN minutes INTEGER NOT NULL DEFAULT 0")
}
