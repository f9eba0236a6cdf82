package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps all keys in one SQLite table, one row per key.
// It holds only the latest value for each key, like FileStore.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Readers never wait on the writer of a concurrent invocation
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

// createSchema creates the state table if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Persist returns the stored value for key and replaces it with value in the
// same transaction.
func (s *SQLiteStore) Persist(ctx context.Context, key, value string) (string, bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var previous string
	found := true
	err = tx.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&previous)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		// Unreadable rows count as absent, as with an unreadable file
		previous, found = "", false
	}

	query := `
		INSERT INTO state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query, key, value, time.Now().UTC()); err != nil {
		return "", false, fmt.Errorf("write state %s: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return "", false, fmt.Errorf("commit state %s: %w", key, err)
	}

	return previous, found, nil
}

// Close releases database resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
