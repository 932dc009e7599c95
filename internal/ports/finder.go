// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Application logic
// depends only on these interfaces, never on concrete implementations.
package ports

import (
	"context"
	"strings"
)

// Location is a normalized source position: one definition site as reported
// by the ty-find tool, converted to the 1-based convention editors expect.
//
// URI is carried verbatim from the tool output and never reinterpreted.
// Line and Column are always >= 1: the tool reports zero-based positions on
// the wire, and the bridge adds 1 exactly once while decoding. Nothing
// downstream adjusts coordinates again.
type Location struct {
	URI    string `json:"uri"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Path returns the URI as a plain filesystem path for display, stripping a
// leading file:// scheme if present. The URI field itself stays untouched.
func (l Location) Path() string {
	return strings.TrimPrefix(l.URI, "file://")
}

// Finder is the query façade over the external ty-find binary. One instance
// captures an optional workspace root at construction and is safe to reuse
// across calls and goroutines: every call owns its subprocess end-to-end and
// no state is shared between calls.
//
// All methods return results in the order the tool produced them, with no
// reordering or deduplication. An empty slice is a valid "no results"
// outcome, never an error. Failures are BinaryNotFound, ExecutionError, or
// MalformedOutputError (see errors.go); callers can tell them apart with
// errors.Is / errors.As.
type Finder interface {
	// FindDefinition resolves the definition of the symbol at a position.
	// line and column are 1-based, matching the tool's --line/--column flags.
	FindDefinition(ctx context.Context, file string, line, column int) ([]Location, error)

	// FindSymbol resolves definitions of a symbol by name within a file.
	FindSymbol(ctx context.Context, file, symbol string) ([]Location, error)

	// Hover returns hover documentation at a position, or nil when the tool
	// has nothing to show for it.
	Hover(ctx context.Context, file string, line, column int) (*Hover, error)

	// References lists every reference to the symbol at a position.
	References(ctx context.Context, file string, line, column int) ([]Location, error)

	// WorkspaceSymbols searches symbol names across the workspace.
	WorkspaceSymbols(ctx context.Context, query string) ([]SymbolInformation, error)

	// DocumentSymbols lists the symbols declared in a single file.
	DocumentSymbols(ctx context.Context, file string) ([]DocumentSymbol, error)
}

// Runner is the raw passthrough path: it runs the tool with the given
// arguments and relays output verbatim, no decoding and no normalization.
// Used for subcommands whose output belongs to the tool (daemon, inspect).
// A non-zero exit is reported in RawResult, not as an error.
type Runner interface {
	Run(ctx context.Context, args ...string) (RawResult, error)
}

// RawResult is the captured outcome of a passthrough invocation.
type RawResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Hover is normalized hover documentation for a position.
type Hover struct {
	Contents MarkupContent
	// Location is the 1-based start of the range the hover applies to,
	// when the tool reported one.
	Location *Location
}

// MarkupContent is hover text plus its format ("markdown" or "plaintext").
type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}
