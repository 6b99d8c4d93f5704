// Package prefs persists the viewer's display preferences. The grade core
// never reads this store; the presentation layer loads preferences once at
// startup and passes them in as plain values.
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

// Theme preference values.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Preferences are the persisted display toggles. Zero values are not the
// defaults; use Defaults.
type Preferences struct {
	Theme      string
	ShowScores bool
	ShowStatus bool
	Collapsed  bool
}

// Defaults returns the documented fallback preferences: everything
// concealed, sidebar expanded, system theme.
func Defaults() Preferences {
	return Preferences{Theme: ThemeSystem}
}

// Store is a SQLite-backed key/value preference store.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the preference database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("prefs: empty database path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create preference directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open preference database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping preference database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS preferences (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize preference schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted preferences. Missing or invalid values fall back
// to the defaults per key; a load never fails on bad stored data.
func (s *Store) Load(ctx context.Context) (Preferences, error) {
	p := Defaults()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return p, fmt.Errorf("failed to read preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return p, fmt.Errorf("failed to scan preference: %w", err)
		}
		switch key {
		case "show_scores":
			p.ShowScores = value == "true"
		case "show_status":
			p.ShowStatus = value == "true"
		case "collapsed":
			p.Collapsed = value == "true"
		case "theme":
			if value == ThemeSystem || value == ThemeLight || value == ThemeDark {
				p.Theme = value
			}
		}
	}
	if err := rows.Err(); err != nil {
		return p, fmt.Errorf("failed to read preferences: %w", err)
	}

	return p, nil
}

// Save persists the full preference set.
func (s *Store) Save(ctx context.Context, p Preferences) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin preference write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	values := map[string]string{
		"show_scores": fmt.Sprintf("%t", p.ShowScores),
		"show_status": fmt.Sprintf("%t", p.ShowStatus),
		"collapsed":   fmt.Sprintf("%t", p.Collapsed),
		"theme":       p.Theme,
	}
	for key, value := range values {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO preferences (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, value); err != nil {
			return fmt.Errorf("failed to write preference %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit preferences: %w", err)
	}
	return nil
}
