package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL CHECK(length(trim(name)) > 0),
		start_date TEXT NOT NULL,
		end_date   TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_items_position ON items(position)`,

	// Optional display colour, opaque to layout.
	`ALTER TABLE items ADD COLUMN color TEXT NOT NULL DEFAULT ''`,
}
