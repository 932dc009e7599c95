package ports

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBinaryNotFound means no candidate path held the ty-find executable.
// Fatal to the requested operation: retrying cannot succeed until the tool
// is installed, so callers should surface an install hint instead.
var ErrBinaryNotFound = errors.New("ty-find binary not found")

// ExecutionError means the tool ran but exited non-zero. Stderr carries the
// captured error stream verbatim, even when empty: it is the only diagnostic
// surface the tool provides, so it is never discarded or trimmed in the
// field itself.
type ExecutionError struct {
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("ty-find exited with status %d", e.ExitCode)
	}
	return fmt.Sprintf("ty-find failed: %s", msg)
}

// MalformedOutputError means the tool exited zero but its stdout did not
// decode as the expected shape. This is a contract violation by the tool,
// not a caller error; Detail carries the parse diagnostic.
type MalformedOutputError struct {
	Detail string
	Err    error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed ty-find output: %s", e.Detail)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}
