package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsContentFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "caves.lvl")
	require.NoError(t, os.WriteFile(target, []byte("TILE ground 0 0\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, target, name)
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for caves.lvl")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, ok := <-w.Events
	assert.False(t, ok)
}

func TestFileKinds(t *testing.T) {
	assert.True(t, IsSpecFile("a/b.YAML"))
	assert.True(t, IsSpecFile("camp.json"))
	assert.False(t, IsSpecFile("caves.lvl"))
	assert.True(t, IsScriptFile("caves.lvl"))
	assert.True(t, IsScriptFile("hooks/caves.tengo"))
	assert.False(t, IsScriptFile("main.lua"))
}
