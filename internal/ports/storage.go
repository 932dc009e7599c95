package ports

import "time"

// ActivityStore persists query activity to durable storage. The backing
// store (bbolt) is workspace-scoped: each workspaceID gets its own
// namespace. Concurrent reads are safe; writes are serialized by the
// adapter.
//
// Recording is an observability concern, not a correctness one: callers
// treat a store failure as non-fatal and never let it fail the query that
// produced the event.
type ActivityStore interface {
	// RecordQuery appends one query event for a workspace.
	RecordQuery(workspaceID string, ev QueryEvent) error

	// Stats aggregates recorded events for a workspace.
	// Returns nil, nil if nothing has been recorded yet.
	Stats(workspaceID string) (*ActivityStats, error)

	// DeleteWorkspace removes all recorded data for a workspace.
	// Idempotent: deleting a nonexistent workspace is not an error.
	DeleteWorkspace(workspaceID string) error

	// Close releases the underlying database.
	Close() error
}

// Outcome classifies how a query ended.
type Outcome string

const (
	OutcomeOK         Outcome = "ok"
	OutcomeExecFailed Outcome = "exec-failed"
	OutcomeMalformed  Outcome = "malformed"
	OutcomeNotFound   Outcome = "not-found"
)

// QueryEvent is one recorded façade call.
type QueryEvent struct {
	Op       string // subcommand name: definition, find, hover, ...
	File     string // target file, empty for workspace-wide queries
	Detail   string // position or symbol/query text
	Results  int    // locations or symbols returned
	Outcome  Outcome
	Duration time.Duration
	At       time.Time
}

// ActivityStats aggregates a workspace's recorded events.
type ActivityStats struct {
	Total   int
	ByOp    map[string]OpStats
	FirstAt time.Time
	LastAt  time.Time
}

// OpStats aggregates events of one operation kind.
type OpStats struct {
	Count    int
	Results  int
	Errors   int
	Duration time.Duration // summed wall time
}
