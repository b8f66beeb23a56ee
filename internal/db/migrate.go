package db

import (
	"database/sql"
	"fmt"
)

// Migrations contains the ordered list of migrations to apply.
var Migrations = []string{
	`CREATE TABLE documents (
		id           INTEGER PRIMARY KEY,
		source_path  TEXT UNIQUE NOT NULL,
		content_hash TEXT NOT NULL,
		html_path    TEXT NOT NULL,
		rendered_at  DATETIME NOT NULL DEFAULT (datetime('now')),
		created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
	)`,
}

// Migrate brings the schema up to date. Each migration runs in its
// own transaction; a failure leaves the version at the last applied
// migration.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count); err != nil {
		return fmt.Errorf("checking schema_version: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (0)`); err != nil {
			return fmt.Errorf("initializing schema version: %w", err)
		}
	}

	var current int
	if err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for i := current; i < len(Migrations); i++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", i+1, err)
		}
		if _, err := tx.Exec(Migrations[i]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
		if _, err := tx.Exec(`UPDATE schema_version SET version = ?`, i+1); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", i+1, err)
		}
	}
	return nil
}
