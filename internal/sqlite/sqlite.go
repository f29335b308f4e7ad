// Package sqlite implements a SnapshotStore backed by a single SQLite
// database file, for deployments that prefer one database over loose
// snapshot files in the data directory.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/openmediahub/mediashelf/internal/logging"
	"github.com/openmediahub/mediashelf/pkg/types"
)

// DefaultFileName is the database file created inside the data
// directory when the sqlite backend is selected.
const DefaultFileName = "shelf.db"

// schemaSQL holds the complete schema. Snapshots are stored whole, one
// blob per name, mirroring the file backend's one-file-per-name layout.
const schemaSQL = `CREATE TABLE IF NOT EXISTS snapshots (
    name TEXT PRIMARY KEY,
    data BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`

// Store persists snapshots as rows in the snapshots table. Like the
// stores it serves, it assumes one caller at a time.
type Store struct {
	db  *sql.DB
	log *logging.Logger
}

// interface conformance check
var _ types.SnapshotStore = (*Store)(nil)

// Open creates the parent directory if needed, opens the database at
// path, and ensures the schema exists.
func Open(path string, log *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Write upserts the complete snapshot for name.
func (s *Store) Write(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("invalid snapshot name %q", name)
	}

	const q = `INSERT INTO snapshots (name, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

	if _, err := s.db.Exec(q, name, data, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", name, err)
	}

	s.log.Debugf("wrote snapshot %s (%d bytes)", name, len(data))
	return nil
}

// Read returns the complete snapshot stored under name.
// Returns types.ErrNoSnapshot when the row does not exist.
func (s *Store) Read(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debugf("no snapshot %s yet", name)
		return nil, fmt.Errorf("%s: %w", name, types.ErrNoSnapshot)
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", name, err)
	}

	s.log.Debugf("read snapshot %s (%d bytes)", name, len(data))
	return data, nil
}
