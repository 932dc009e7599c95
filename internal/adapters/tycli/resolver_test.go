package tycli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyfind/tyfind/internal/ports"
)

// touchBinary creates an executable placeholder at path.
func touchBinary(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755))
}

func TestResolve_FirstExistingCandidateWins(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a", "ty-find")
	b := filepath.Join(dir, "b", "ty-find")
	touchBinary(t, a)
	touchBinary(t, b)

	r := newResolver([]string{a, b}, false)
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestResolve_SkipsMissingCandidates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a", "ty-find") // never created
	b := filepath.Join(dir, "b", "ty-find")
	c := filepath.Join(dir, "c", "ty-find")
	touchBinary(t, b)
	touchBinary(t, c)

	r := newResolver([]string{a, b, c}, false)
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestResolve_IgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	asDir := filepath.Join(dir, "ty-find")
	require.NoError(t, os.MkdirAll(asDir, 0o755))
	real := filepath.Join(dir, "bin", "ty-find")
	touchBinary(t, real)

	r := newResolver([]string{asDir, real}, false)
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, real, got)
}

func TestResolve_NoCandidateExists(t *testing.T) {
	dir := t.TempDir()
	r := newResolver([]string{filepath.Join(dir, "ty-find")}, false)

	_, err := r.Resolve()
	assert.True(t, errors.Is(err, ports.ErrBinaryNotFound))
}

func TestResolve_EmptyCandidateList(t *testing.T) {
	r := newResolver(nil, false)
	_, err := r.Resolve()
	assert.ErrorIs(t, err, ports.ErrBinaryNotFound)
}

func TestResolve_RechecksFilesystemEachCall(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ty-find")
	touchBinary(t, path)

	r := newResolver([]string{path}, false)
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, path, got)

	// Uninstall between calls: the old answer must not be replayed.
	require.NoError(t, os.Remove(path))
	_, err = r.Resolve()
	assert.ErrorIs(t, err, ports.ErrBinaryNotFound)
}

func TestResolve_PathFallback(t *testing.T) {
	dir := t.TempDir()
	touchBinary(t, filepath.Join(dir, "ty-find"))
	t.Setenv("PATH", dir)

	missing := filepath.Join(t.TempDir(), "ty-find")
	r := newResolver([]string{missing}, true)
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ty-find"), got)
}

func TestResolve_FixedListNeverConsultsPath(t *testing.T) {
	dir := t.TempDir()
	touchBinary(t, filepath.Join(dir, "ty-find"))
	t.Setenv("PATH", dir)

	r := newResolver([]string{filepath.Join(t.TempDir(), "ty-find")}, false)
	_, err := r.Resolve()
	assert.ErrorIs(t, err, ports.ErrBinaryNotFound)
}

func TestResolve_SkipsOwnExecutable(t *testing.T) {
	dir := t.TempDir()
	self := filepath.Join(dir, "ty-find")
	touchBinary(t, self)

	// Pretend the running shim is installed at the first candidate: it must
	// not delegate to itself.
	r := &Resolver{candidates: []string{self}, selfPath: self}
	_, err := r.Resolve()
	assert.ErrorIs(t, err, ports.ErrBinaryNotFound)

	other := filepath.Join(dir, "bin", "ty-find")
	touchBinary(t, other)
	r = &Resolver{candidates: []string{self, other}, selfPath: self}
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestNewResolver_WorkspaceCandidateIncluded(t *testing.T) {
	ws := t.TempDir()
	r := NewResolver(ws)
	assert.Contains(t, r.Candidates(), filepath.Join(ws, ".tyfind", "bin", exeName()))

	// Without a workspace the extra candidate is absent.
	assert.NotContains(t, NewResolver("").Candidates(), filepath.Join(ws, ".tyfind", "bin", exeName()))
}

func TestNewStaticResolver_ChecksTheOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom-ty-find")
	r := NewStaticResolver(path)

	_, err := r.Resolve()
	assert.ErrorIs(t, err, ports.ErrBinaryNotFound)

	touchBinary(t, path)
	got, err := r.Resolve()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}
