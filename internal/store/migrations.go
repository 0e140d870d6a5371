package store

import (
	"database/sql"
	"fmt"
)

// migration is a numbered, named, forward-only SQL step tracked in a
// schema_migrations table.
type migration struct {
	Version int
	Name    string
	Up      string
}

var allMigrations = []migration{
	{
		Version: 1,
		Name:    "add started_at index for history ordering",
		Up:      `CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);`,
	},
}

// initSchema creates the base tables. Migrations only ever add to what this
// creates.
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at   DATETIME NOT NULL,
			clients      INTEGER NOT NULL,
			recv_len     INTEGER NOT NULL,
			interval_us  INTEGER NOT NULL,
			timeout_s    INTEGER NOT NULL,
			detail       INTEGER NOT NULL,
			overall_line TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS run_summaries (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       INTEGER NOT NULL REFERENCES runs(id),
			url          TEXT NOT NULL,
			summary_line TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_run_summaries_run_id ON run_summaries(run_id);
	`)
	if err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	if err := initSchema(db); err != nil {
		return err
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current); err != nil {
		return fmt.Errorf("read current migration version: %w", err)
	}

	for _, m := range allMigrations {
		if m.Version <= current {
			continue
		}
		if _, err := db.Exec(m.Up); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
	}
	return nil
}
