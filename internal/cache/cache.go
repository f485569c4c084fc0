// Package cache keeps the last successful reminder fetch in a local sqlite
// database. It is a read-through snapshot only: the TUI renders it while the
// first fetch is in flight, and `watch` diffs against it to log out-of-band
// changes. Server responses always overwrite it; nothing is ever written
// back to the server from here.
package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mwidmann/remindcal/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	user_id    TEXT PRIMARY KEY,
	fetched_at TEXT NOT NULL,
	payload    TEXT NOT NULL
);
`

// Store is the snapshot store. Safe for use from a single process; the
// client is single-user by construction.
type Store struct {
	path string
	db   *sql.DB
}

// NewStore points at a database file without opening it.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Open creates the parent directory and schema as needed.
func (s *Store) Open() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("init cache schema: %w", err)
	}
	s.db = db
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put overwrites the user's snapshot with a freshly fetched reminder set.
func (s *Store) Put(userID string, reminders []models.Reminder) error {
	payload, err := json.Marshal(reminders)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (user_id, fetched_at, payload) VALUES (?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET fetched_at = excluded.fetched_at, payload = excluded.payload`,
		userID, time.Now().UTC().Format(time.RFC3339), string(payload),
	)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Get returns the user's last snapshot and when it was fetched. A missing
// snapshot returns ok=false, not an error.
func (s *Store) Get(userID string) ([]models.Reminder, time.Time, bool, error) {
	var fetchedAt, payload string
	err := s.db.QueryRow(
		`SELECT fetched_at, payload FROM snapshots WHERE user_id = ?`, userID,
	).Scan(&fetchedAt, &payload)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("read snapshot: %w", err)
	}

	var reminders []models.Reminder
	if err := json.Unmarshal([]byte(payload), &reminders); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		at = time.Time{}
	}
	return reminders, at, true, nil
}
