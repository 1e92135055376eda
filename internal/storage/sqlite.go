// Package storage provides SQLite-based persistence for baked layer presets.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for preset persistence.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			noise_algorithm TEXT NOT NULL,
			noise_seed INTEGER NOT NULL DEFAULT 0,
			bound_min REAL NOT NULL,
			bound_max REAL NOT NULL,
			post_process TEXT NOT NULL DEFAULT 'raw',
			has_shape INTEGER NOT NULL DEFAULT 0,
			width REAL NOT NULL DEFAULT 0,
			length REAL NOT NULL DEFAULT 0,
			density REAL NOT NULL DEFAULT 0,
			elevation_scale REAL NOT NULL DEFAULT 0,
			random_weight INTEGER NOT NULL DEFAULT 0,
			weight_value REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS preset_layers (
			preset_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			offset_x REAL NOT NULL,
			offset_y REAL NOT NULL,
			scale_x REAL NOT NULL,
			scale_y REAL NOT NULL,
			scale_z REAL NOT NULL,
			weight REAL NOT NULL,
			PRIMARY KEY (preset_id, position)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// deletePreset removes a preset and its layers inside tx.
// Reports whether a preset was removed.
func deletePreset(tx *sql.Tx, name string) (bool, error) {
	var id int64
	err := tx.QueryRow("SELECT id FROM presets WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err := tx.Exec("DELETE FROM preset_layers WHERE preset_id = ?", id); err != nil {
		return false, err
	}
	if _, err := tx.Exec("DELETE FROM presets WHERE id = ?", id); err != nil {
		return false, err
	}
	return true, nil
}
