package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// Entry is one cached transcription result.
type Entry struct {
	Fingerprint string
	Language    string
	Model       string
	Payload     []byte // transcript JSON as produced by WhisperX
	CreatedAt   time.Time
}

// Store manages transcript persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
}

// Open initializes or connects to the transcript cache under dir. The store
// holds an exclusive file lock for its lifetime so concurrent generate runs
// from separate processes serialize their cache access.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "transcripts.lock"))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "transcripts.db"))
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	const schema = `CREATE TABLE IF NOT EXISTS transcripts (
		fingerprint TEXT PRIMARY KEY,
		language TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		payload BLOB NOT NULL,
		created_at TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, lock: lock}, nil
}

// Close releases the database connection and the file lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the cached entry for a fingerprint, or nil on a miss.
func (s *Store) Lookup(ctx context.Context, fingerprint string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT fingerprint, language, model, payload, created_at FROM transcripts WHERE fingerprint = ?`,
		fingerprint,
	)
	var entry Entry
	var createdAt string
	if err := row.Scan(&entry.Fingerprint, &entry.Language, &entry.Model, &entry.Payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup transcript: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		entry.CreatedAt = parsed
	}
	return &entry, nil
}

// Save upserts a transcription result.
func (s *Store) Save(ctx context.Context, entry Entry) error {
	if entry.Fingerprint == "" {
		return fmt.Errorf("save transcript: fingerprint required")
	}
	if len(entry.Payload) == 0 {
		return fmt.Errorf("save transcript: payload required")
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transcripts (fingerprint, language, model, payload, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(fingerprint) DO UPDATE SET
		   language = excluded.language,
		   model = excluded.model,
		   payload = excluded.payload,
		   created_at = excluded.created_at`,
		entry.Fingerprint, entry.Language, entry.Model, entry.Payload,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	return nil
}
