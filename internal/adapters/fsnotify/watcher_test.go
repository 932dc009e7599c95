package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForCallback waits up to timeout for the callback channel to receive a value.
func waitForCallback(ch <-chan string, timeout time.Duration) (string, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		return "", false
	}
}

func TestWatcher_DetectsBinaryInstall(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	err = w.Watch([]string{dir}, func(path string) {
		changed <- path
	})
	require.NoError(t, err)

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)

	installed := filepath.Join(dir, "ty-find")
	require.NoError(t, os.WriteFile(installed, []byte("#!/bin/sh\n"), 0755))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for installed binary")
	assert.Equal(t, installed, path)
}

func TestWatcher_DetectsBinaryRemoval(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "ty-find")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0755))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	err = w.Watch([]string{dir}, func(path string) {
		changed <- path
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.Remove(binary))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback for removed binary")
	assert.Equal(t, binary, path)
}

func TestWatcher_WatchesMultipleDirectories(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	err = w.Watch([]string{first, second}, func(path string) {
		changed <- path
	})
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	target := filepath.Join(second, "ty-find")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0755))

	path, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok, "expected callback from second directory")
	assert.Equal(t, target, path)
}

func TestWatcher_SkipsMissingDirectories(t *testing.T) {
	existing := t.TempDir()
	missing := filepath.Join(existing, "bin") // never created

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changed := make(chan string, 10)
	err = w.Watch([]string{missing, existing}, func(path string) {
		changed <- path
	})
	require.NoError(t, err, "missing directories are skipped, not errors")

	time.Sleep(50 * time.Millisecond)

	target := filepath.Join(existing, "ty-find")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0755))

	_, ok := waitForCallback(changed, 2*time.Second)
	assert.True(t, ok)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Watch([]string{t.TempDir()}, func(string) {}))
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_NoCallbackAfterStop(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher()
	require.NoError(t, err)

	changed := make(chan string, 10)
	require.NoError(t, w.Watch([]string{dir}, func(path string) {
		changed <- path
	}))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ty-find"), []byte("x"), 0755))

	_, ok := waitForCallback(changed, 300*time.Millisecond)
	assert.False(t, ok, "stopped watcher must not fire")
}
