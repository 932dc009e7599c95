package ports

// Resolver produces a usable path to the ty-find executable or fails with
// ErrBinaryNotFound. Implementations differ in policy (fixed candidate list,
// PATH fallback, caching) but share one guarantee: the returned path existed
// as a regular file at resolution time, never a remembered path that has
// since vanished.
type Resolver interface {
	Resolve() (string, error)
}
