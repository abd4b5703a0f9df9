// Package prefs persists small user preferences, currently just the theme,
// in a local SQLite database so they survive restarts.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	keyTheme = "theme"

	// DefaultTheme is used until the user picks one.
	DefaultTheme = "dark"
)

// Store is a SQLite-backed key/value store for preferences.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preferences database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't benefit from multiple connections
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping preferences database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize settings table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Theme returns the saved theme name, or the default when none is saved.
func (s *Store) Theme(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", keyTheme).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read theme: %w", err)
	}
	return value, nil
}

// SetTheme saves the theme name.
func (s *Store) SetTheme(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("theme name cannot be empty")
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		keyTheme, name)
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}
