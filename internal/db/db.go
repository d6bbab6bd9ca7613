package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// busyTimeoutMS is how long a connection waits on another writer's lock
// before failing with SQLITE_BUSY.
const busyTimeoutMS = 5000

// dsnFor builds the driver DSN for path. File databases begin every
// transaction IMMEDIATE, so a read-then-write transaction waits up to
// busy_timeout for the write lock instead of failing with SQLITE_BUSY.
func dsnFor(path string) string {
	if path == MemoryPath {
		return path
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_txlock=immediate", path, busyTimeoutMS)
}

// OpenDB opens the SQLite item store at path, creating its directory if
// needed. It enables WAL mode and runs migrations. An in-memory database is
// limited to one connection, since every new connection would otherwise see
// its own empty database.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsnFor(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
