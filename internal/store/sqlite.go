package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/termrain/termrain/internal/config"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS settings_slot (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	record BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteBackend stores the record as a blob in a one-row slot table. Same
// atomic whole-record semantics as the file backend.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the slot database at dbPath.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite backend: db path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), config.FileModeDir); err != nil {
		return nil, fmt.Errorf("sqlite backend: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite backend: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite backend: set busy timeout: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite backend: create schema: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Read returns the stored record bytes.
func (b *SQLiteBackend) Read() ([]byte, error) {
	var record []byte
	err := b.db.QueryRow("SELECT record FROM settings_slot WHERE id = 1").Scan(&record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("sqlite backend: read: %w", err)
	}
	return record, nil
}

// Write replaces the stored record.
func (b *SQLiteBackend) Write(data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO settings_slot (id, record, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`,
		data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("sqlite backend: write: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (b *SQLiteBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
