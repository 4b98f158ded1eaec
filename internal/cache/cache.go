// Package cache persists the last successfully fetched copy of each
// resource collection, so the browser can show stale content when no
// backend candidate is reachable at all.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/django-nerd/folio/internal/content"
)

// ErrNoSnapshot is returned when a collection has never been cached.
var ErrNoSnapshot = errors.New("no snapshot for collection")

// Store wraps a SQLite database holding collection snapshots.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens a snapshot store at the given path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// OpenMemory creates an in-memory snapshot store (useful for testing).
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory cache: %w", err)
	}
	s := &Store{db: db, path: ":memory:"}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    id TEXT PRIMARY KEY,
    collection TEXT NOT NULL UNIQUE,
    items TEXT NOT NULL,
    fetched_at TIMESTAMP NOT NULL
);
`

// Save stores items as the current snapshot of the named collection,
// replacing any previous one.
func (s *Store) Save(ctx context.Context, collection string, items []content.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding snapshot for %s: %w", collection, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, collection, items, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(collection) DO UPDATE SET items = excluded.items, fetched_at = excluded.fetched_at`,
		uuid.New().String(), collection, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving snapshot for %s: %w", collection, err)
	}
	return nil
}

// Load returns the stored snapshot of the named collection and when it was
// fetched. Returns ErrNoSnapshot if the collection was never cached.
func (s *Store) Load(ctx context.Context, collection string) ([]content.Item, time.Time, error) {
	var data string
	var fetchedAt time.Time

	err := s.db.QueryRowContext(ctx,
		`SELECT items, fetched_at FROM snapshots WHERE collection = ?`, collection,
	).Scan(&data, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("loading snapshot for %s: %w", collection, err)
	}

	var items []content.Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding snapshot for %s: %w", collection, err)
	}
	return items, fetchedAt, nil
}
