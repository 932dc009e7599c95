package ports

// Watcher monitors a set of directories for changes to their direct
// entries. The resolver cache uses it to notice installs, upgrades, and
// removals of the ty-find binary in the candidate directories. Only one
// Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring the given directories (non-recursively).
	// Directories that do not exist yet are skipped. onChange receives the
	// absolute path of each created, removed, renamed, or rewritten entry
	// and may be invoked from any goroutine.
	Watch(dirs []string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
