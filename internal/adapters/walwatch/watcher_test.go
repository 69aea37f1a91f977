package walwatch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) *atomic.Int32 {
	t.Helper()
	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)

	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx, func() { calls.Add(1) }) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	// Give the watcher time to register the directory
	time.Sleep(50 * time.Millisecond)
	return &calls
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	calls := startWatcher(t, path)

	require.NoError(t, os.WriteFile(path, []byte(`{"colors":{}}`), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	calls := startWatcher(t, path)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	calls := startWatcher(t, filepath.Join(dir, "colors.json"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "colors.sh"), []byte("#!/bin/sh"), 0o644))

	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing", "colors.json"), 0)
	require.NoError(t, err)

	err = w.Watch(context.Background(), func() {})

	assert.Error(t, err)
}

func TestNew_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	w, err := New("~/.cache/wal/colors.json", 0)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".cache", "wal", "colors.json"), w.path)
	assert.Equal(t, DefaultDebounce, w.debounce)
}
