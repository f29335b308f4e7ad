// Package filestore implements the default SnapshotStore: one plain
// file per snapshot name inside the data directory, written atomically
// through the temp-file, fsync, rename pattern.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/openmediahub/mediashelf/internal/logging"
	"github.com/openmediahub/mediashelf/pkg/types"
)

// Store persists snapshots as files in a single directory. Like the
// stores it serves, it assumes one caller at a time.
type Store struct {
	dir string
	log *logging.Logger
}

// interface conformance check
var _ types.SnapshotStore = (*Store)(nil)

// New creates the data directory if needed and returns a store over
// it. The logger may not be nil; pass a stderr session component when
// nothing better is available.
func New(dir string, log *logging.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the data directory the store writes into.
func (s *Store) Dir() string {
	return s.dir
}

// Write atomically replaces the snapshot file for name. The data first
// goes to a temp file in the same directory, is flushed and synced,
// and only then renamed over the target, so an interrupted write
// leaves the previous snapshot intact.
func (s *Store) Write(name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	s.log.Debugf("wrote snapshot %s (%d bytes)", name, len(data))
	return nil
}

// Read returns the snapshot file for name.
// Returns types.ErrNoSnapshot when the file does not exist.
func (s *Store) Read(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debugf("no snapshot %s yet", name)
			return nil, fmt.Errorf("%s: %w", name, types.ErrNoSnapshot)
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	s.log.Debugf("read snapshot %s (%d bytes)", name, len(data))
	return data, nil
}

// path maps a snapshot name onto the data directory, rejecting names
// that would escape it.
func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid snapshot name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
