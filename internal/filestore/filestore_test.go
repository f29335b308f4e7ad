package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/openmediahub/mediashelf/internal/logging"
	"github.com/openmediahub/mediashelf/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), logging.Stderr().Component("filestore"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []byte("{\n  \"abc\": {\"identifier\": \"abc\"}\n}\n")
	if err := s.Write(types.SnapshotItems, want); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := s.Read(types.SnapshotItems)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("round trip mismatch: got %q, want %q", got, want)
	}
}

func TestReadMissingSnapshot(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Read(types.SnapshotAccounts)
	if !errors.Is(err, types.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestWriteReplacesPreviousSnapshot(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write(types.SnapshotAccounts, []byte("\"Alice\" <alice@example.com>\n")); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := s.Write(types.SnapshotAccounts, []byte("\"Bob\" <bob@example.com>\n")); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	got, err := s.Read(types.SnapshotAccounts)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if strings.Contains(string(got), "alice") {
		t.Errorf("previous snapshot content survived the rewrite: %q", got)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write(types.SnapshotItems, []byte("{}\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly the snapshot file, found %d entries", len(entries))
	}
}

func TestSnapshotFileNameMatchesName(t *testing.T) {
	s := newTestStore(t)

	if err := s.Write(types.SnapshotItems, []byte("{}\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(s.Dir(), types.SnapshotItems)); err != nil {
		t.Errorf("expected %s on disk: %v", types.SnapshotItems, err)
	}
}

func TestInvalidSnapshotNames(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "../escape"} {
		if err := s.Write(name, []byte("x")); err == nil {
			t.Errorf("Write accepted invalid name %q", name)
		}
		if _, err := s.Read(name); err == nil {
			t.Errorf("Read accepted invalid name %q", name)
		}
	}
}

func TestNewCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if _, err := New(dir, logging.Stderr().Component("filestore")); err != nil {
		t.Fatalf("New failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected directory at %s", dir)
	}
}

func TestRepositoryRoundTripThroughStore(t *testing.T) {
	s := newTestStore(t)
	schema := types.DublinCore()

	repo := types.NewRepository(schema, s)
	if err := repo.Add(types.FieldMap{
		"identifier": "abc123",
		"title":      "Sunrise",
		"creator":    "bob@example.com",
	}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := repo.Dump(); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	restored := types.NewRepository(schema, s)
	if err := restored.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	item, ok := restored.Lookup("abc123")
	if !ok {
		t.Fatal("item missing after reload from disk")
	}
	if got := item.Field("title"); got != "Sunrise" {
		t.Errorf("title = %q, want %q", got, "Sunrise")
	}
	if got := item.Field("creator"); got != "bob@example.com" {
		t.Errorf("creator = %q, want %q", got, "bob@example.com")
	}
}

func TestAccountsRoundTripThroughStore(t *testing.T) {
	s := newTestStore(t)

	accounts := types.NewAccounts(s)
	if err := accounts.Add(`"Alice" <alice@example.com>`); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := accounts.Add("bob@example.com"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := accounts.Dump(); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	restored := types.NewAccounts(s)
	if err := restored.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if name, ok := restored.Lookup("alice@example.com"); !ok || name != "Alice" {
		t.Errorf("alice lookup = %q, %v after reload", name, ok)
	}
	if name, ok := restored.Lookup("bob@example.com"); !ok || name != "" {
		t.Errorf("bob lookup = %q, %v after reload", name, ok)
	}
}
