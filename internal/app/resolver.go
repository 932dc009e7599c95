package app

import (
	"os"
	"sync"

	"github.com/tyfind/tyfind/internal/ports"
)

// CachedResolver memoizes another resolver for long-lived hosts such as
// the MCP server. Every read re-stats the remembered path, so a binary
// that vanished is never handed out. Directory watching additionally
// lets a later-installed, higher-priority candidate win: a stat of the
// cached path alone would never notice it.
type CachedResolver struct {
	inner ports.Resolver

	mu   sync.Mutex
	path string
}

// NewCachedResolver wraps inner with a revalidating cache.
func NewCachedResolver(inner ports.Resolver) *CachedResolver {
	return &CachedResolver{inner: inner}
}

// Resolve returns the cached path when it still points at a regular
// file, and re-runs the full candidate scan otherwise.
func (c *CachedResolver) Resolve() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path != "" {
		if info, err := os.Stat(c.path); err == nil && info.Mode().IsRegular() {
			return c.path, nil
		}
		c.path = ""
	}

	path, err := c.inner.Resolve()
	if err != nil {
		return "", err
	}
	c.path = path
	return path, nil
}

// Invalidate drops the cached path; the next Resolve scans from scratch.
func (c *CachedResolver) Invalidate() {
	c.mu.Lock()
	c.path = ""
	c.mu.Unlock()
}

// WatchInvalidate subscribes the cache to changes in the candidate
// directories. Any event drops the cache, so an install into a
// higher-priority directory takes effect on the next query.
func (c *CachedResolver) WatchInvalidate(w ports.Watcher, dirs []string) error {
	return w.Watch(dirs, func(string) { c.Invalidate() })
}
