// Package database opens the single long-lived connection the pipeline
// borrows. The host owns the handle and closes it on shutdown; no pipeline
// stage closes it mid-flight.
package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Open opens a database from a connection string.
// Formats: "sqlite:path", "sqlite://path", "postgres://..." or "postgresql://...".
// Returns the handle and the driver name ("sqlite3" or "pgx"); the driver
// name selects the dry-run statement and catalog queries downstream.
func Open(conn string) (*sql.DB, string, error) {
	driver, dsn := parseConn(conn)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", driver, err)
	}
	if driver == "sqlite3" {
		// SQLite ignores FK constraints unless this PRAGMA is set.
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, "", fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	return db, driver, nil
}

func parseConn(conn string) (driver, dsn string) {
	if strings.HasPrefix(conn, "sqlite://") {
		return "sqlite3", strings.TrimPrefix(conn, "sqlite://")
	}
	if strings.HasPrefix(conn, "sqlite:") {
		return "sqlite3", strings.TrimPrefix(conn, "sqlite:")
	}
	return "pgx", conn
}

// FilePath returns the backing file path for file-backed connection strings,
// or "" for server-backed databases. Used by the TUI to watch the database
// file for outside changes.
func FilePath(conn string) string {
	if strings.HasPrefix(conn, "sqlite://") {
		return strings.TrimPrefix(conn, "sqlite://")
	}
	if strings.HasPrefix(conn, "sqlite:") {
		return strings.TrimPrefix(conn, "sqlite:")
	}
	return ""
}
