// Package sqlitekv is the default kv.Store backend: a single-table SQLite
// database accessed through database/sql and the mattn/go-sqlite3 driver,
// with WAL journaling, a busy timeout, and a retry loop around "database is
// locked".
package sqlitekv

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/oxhq/browscap/internal/kv"
)

const maxLockRetries = 5

// Store is a kv.Store and kv.BatchStore backed by a local SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens a SQLite-backed KV store at path,
// applying the schema migration and WAL tuning. The returned Store owns the
// *sql.DB and must be closed by the caller.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("sqlitekv: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf(
		"%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL",
		path,
	))
	if err != nil {
		return nil, fmt.Errorf("sqlitekv: open: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlitekv: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   BLOB PRIMARY KEY,
		value BLOB NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("creating kv table: %w", err)
	}
	return nil
}

// Put writes key/value, overwriting any existing entry.
func (s *Store) Put(key, value []byte) error {
	_, err := execWithRetry(s.db, "INSERT INTO kv(key, value) VALUES (?, ?) "+
		"ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return err
}

// Get returns the value for key, or ok=false if it is absent.
func (s *Store) Get(key []byte) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlitekv: get: %w", err)
	}
	return value, true, nil
}

// Batch runs fn against a transaction-scoped Store, committing on success
// and rolling back on any error (including a panic, which it re-raises
// after rollback).
func (s *Store) Batch(fn func(kv.Store) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlitekv: begin: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := fn(&txStore{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlitekv: commit: %w", err)
	}
	committed = true
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// txStore adapts a single transaction to kv.Store for use inside Batch.
type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Put(key, value []byte) error {
	_, err := t.tx.Exec("INSERT INTO kv(key, value) VALUES (?, ?) "+
		"ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return err
}

func (t *txStore) Get(key []byte) ([]byte, bool, error) {
	var value []byte
	err := t.tx.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlitekv: tx get: %w", err)
	}
	return value, true, nil
}

func (t *txStore) Close() error { return nil }

// execWithRetry retries a write when SQLite reports the database is locked.
func execWithRetry(db *sql.DB, query string, args ...any) (sql.Result, error) {
	var (
		res sql.Result
		err error
	)
	for range maxLockRetries {
		res, err = db.Exec(query, args...)
		if err == nil {
			return res, nil
		}
		if strings.Contains(err.Error(), "database is locked") {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		return nil, fmt.Errorf("sqlitekv: exec: %w", err)
	}
	return nil, fmt.Errorf("sqlitekv: database is locked after %d attempts: %w", maxLockRetries, err)
}

var _ kv.Store = (*Store)(nil)
var _ kv.BatchStore = (*Store)(nil)
