// Package libsqlkv is an alternate kv.Store backend for publishing a built
// index directly to a libSQL (Turso) primary, or for opening a local
// embedded replica of one, instead of a plain local SQLite file. It shares
// sqlitekv's schema and exists so a build node and a fleet of search nodes
// can agree on one physical store without re-running `convert` on every
// machine. Open always connects through a libsql.Connector; there is no
// separate local-file branch.
package libsqlkv

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"os"

	libsql "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/oxhq/browscap/internal/kv"
)

// Store is a kv.Store backed by a libSQL connection (remote primary or
// local embedded replica).
type Store struct {
	db *sql.DB
}

// Open connects to the libSQL database at url (e.g. "libsql://host" or a
// "file:replica.db?..." embedded-replica DSN). authToken may be empty for
// unauthenticated/local connections.
func Open(url, authToken string) (*Store, error) {
	var (
		connector driver.Connector
		err       error
	)
	if authToken != "" {
		connector, err = libsql.NewConnector(url, libsql.WithAuthToken(authToken))
	} else {
		connector, err = libsql.NewConnector(url)
	}
	if err != nil {
		return nil, fmt.Errorf("libsqlkv: connector: %w", err)
	}
	conn := sql.OpenDB(connector)

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("libsqlkv: migrate: %w", err)
	}

	return &Store{db: conn}, nil
}

// AuthTokenFromEnv reads the conventional libSQL auth token environment
// variable, returning "" if unset.
func AuthTokenFromEnv() string {
	return os.Getenv("BROWSCAP_LIBSQL_AUTH_TOKEN")
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   BLOB PRIMARY KEY,
		value BLOB NOT NULL
	);`)
	return err
}

func (s *Store) Put(key, value []byte) error {
	_, err := s.db.Exec("INSERT INTO kv(key, value) VALUES (?, ?) "+
		"ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	if err != nil {
		return fmt.Errorf("libsqlkv: put: %w", err)
	}
	return nil
}

func (s *Store) Get(key []byte) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("libsqlkv: get: %w", err)
	}
	return value, true, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

var _ kv.Store = (*Store)(nil)
