package skill

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_EmitsChangedSkill(t *testing.T) {
	dir := t.TempDir()
	skillDir := filepath.Join(dir, "langgraph")
	require.NoError(t, os.MkdirAll(skillDir, 0755))
	path := filepath.Join(skillDir, DocumentFilename)
	require.NoError(t, os.WriteFile(path, []byte("# v1\n"), 0644))

	w, err := NewWatcher(WatcherConfig{Dir: dir, DebounceDelay: 50 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("# v2\n"), 0644))

	select {
	case changed := <-w.Changes():
		require.Equal(t, path, changed)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	skillDir := filepath.Join(dir, "langgraph")
	require.NoError(t, os.MkdirAll(skillDir, 0755))

	w, err := NewWatcher(WatcherConfig{Dir: dir, DebounceDelay: 50 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "notes.txt"), []byte("x"), 0644))

	select {
	case changed := <-w.Changes():
		t.Fatalf("unexpected change event for %s", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopClosesChanges(t *testing.T) {
	dir := t.TempDir()
	skillDir := filepath.Join(dir, "langgraph")
	require.NoError(t, os.MkdirAll(skillDir, 0755))
	path := filepath.Join(skillDir, DocumentFilename)

	w, err := NewWatcher(WatcherConfig{Dir: dir, DebounceDelay: 10 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	// Keep changes flowing while stopping; an undelivered pending flush
	// must never land on a closed channel.
	require.NoError(t, os.WriteFile(path, []byte("# v1\n"), 0644))
	require.NoError(t, w.Stop())

	for {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return
			}
		case <-time.After(3 * time.Second):
			t.Fatal("timed out waiting for changes channel to close")
		}
	}
}
