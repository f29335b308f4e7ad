package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWritesComponentLines(t *testing.T) {
	dir := t.TempDir()

	sess, err := Open(dir)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID())
	require.Equal(t, filepath.Join(dir, sess.ID()+".log"), sess.Path())

	repo := sess.Component("repository")
	store := sess.Component("filestore")

	repo.Infof("loaded %d items", 3)
	store.Debugf("wrote snapshot %s", "repository.json")
	store.Warnf("slow write")
	repo.Errorf("dump failed: %v", os.ErrPermission)

	require.NoError(t, sess.Close())

	data, err := os.ReadFile(sess.Path())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "[repository] [INFO] loaded 3 items")
	assert.Contains(t, out, "[filestore] [DEBUG] wrote snapshot repository.json")
	assert.Contains(t, out, "[filestore] [WARN] slow write")
	assert.Contains(t, out, "[repository] [ERROR] dump failed: permission denied")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "nested")

	sess, err := Open(dir)
	require.NoError(t, err)
	defer sess.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpenFallsBackToStderr(t *testing.T) {
	// A regular file where the directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	sess, err := Open(filepath.Join(blocker, "logs"))
	require.Error(t, err)
	require.NotNil(t, sess)
	assert.Empty(t, sess.Path())
	assert.NotEmpty(t, sess.ID())

	// The fallback session must stay usable.
	sess.Component("shell").Infof("still alive")
}

func TestCloseIsIdempotent(t *testing.T) {
	sess, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, sess.Close())
	require.NoError(t, sess.Close())

	// Writes after close are discarded, not a panic.
	sess.Component("shell").Infof("after close")
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := Stderr()
	b := Stderr()
	assert.NotEqual(t, a.ID(), b.ID())
}
