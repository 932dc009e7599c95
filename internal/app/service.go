// Package app wires the adapters together: resolution policy, the command
// bridge, and activity recording. Front-ends (the CLI and the MCP server)
// talk to a Service instead of to adapters directly.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tyfind/tyfind/internal/ports"
)

// Service forwards queries to the finder and records one activity event
// per call. Recording is best-effort: a nil or failing store never fails
// the query that produced the event.
type Service struct {
	finder    ports.Finder
	runner    ports.Runner
	store     ports.ActivityStore // nil disables recording
	workspace string              // workspace root, may be empty
}

// NewService builds a Service. finder and runner are typically the same
// bridge; store may be nil.
func NewService(finder ports.Finder, runner ports.Runner, store ports.ActivityStore, workspace string) *Service {
	return &Service{finder: finder, runner: runner, store: store, workspace: workspace}
}

// WorkspaceID scopes store records: the base name of the workspace root,
// or "global" when no root is configured.
func (s *Service) WorkspaceID() string {
	if s.workspace == "" {
		return "global"
	}
	return filepath.Base(s.workspace)
}

// Workspace returns the configured workspace root, which may be empty.
func (s *Service) Workspace() string {
	return s.workspace
}

func (s *Service) FindDefinition(ctx context.Context, file string, line, column int) ([]ports.Location, error) {
	start := time.Now()
	locs, err := s.finder.FindDefinition(ctx, file, line, column)
	s.record(ports.QueryEvent{
		Op:      "definition",
		File:    file,
		Detail:  fmt.Sprintf("%d:%d", line, column),
		Results: len(locs),
		Outcome: outcomeOf(err),
	}, start)
	return locs, err
}

func (s *Service) FindSymbol(ctx context.Context, file, symbol string) ([]ports.Location, error) {
	start := time.Now()
	locs, err := s.finder.FindSymbol(ctx, file, symbol)
	s.record(ports.QueryEvent{
		Op:      "find",
		File:    file,
		Detail:  symbol,
		Results: len(locs),
		Outcome: outcomeOf(err),
	}, start)
	return locs, err
}

func (s *Service) Hover(ctx context.Context, file string, line, column int) (*ports.Hover, error) {
	start := time.Now()
	h, err := s.finder.Hover(ctx, file, line, column)
	results := 0
	if h != nil {
		results = 1
	}
	s.record(ports.QueryEvent{
		Op:      "hover",
		File:    file,
		Detail:  fmt.Sprintf("%d:%d", line, column),
		Results: results,
		Outcome: outcomeOf(err),
	}, start)
	return h, err
}

func (s *Service) References(ctx context.Context, file string, line, column int) ([]ports.Location, error) {
	start := time.Now()
	locs, err := s.finder.References(ctx, file, line, column)
	s.record(ports.QueryEvent{
		Op:      "references",
		File:    file,
		Detail:  fmt.Sprintf("%d:%d", line, column),
		Results: len(locs),
		Outcome: outcomeOf(err),
	}, start)
	return locs, err
}

func (s *Service) WorkspaceSymbols(ctx context.Context, query string) ([]ports.SymbolInformation, error) {
	start := time.Now()
	syms, err := s.finder.WorkspaceSymbols(ctx, query)
	s.record(ports.QueryEvent{
		Op:      "workspace-symbols",
		Detail:  query,
		Results: len(syms),
		Outcome: outcomeOf(err),
	}, start)
	return syms, err
}

func (s *Service) DocumentSymbols(ctx context.Context, file string) ([]ports.DocumentSymbol, error) {
	start := time.Now()
	syms, err := s.finder.DocumentSymbols(ctx, file)
	s.record(ports.QueryEvent{
		Op:      "document-symbols",
		File:    file,
		Results: len(syms),
		Outcome: outcomeOf(err),
	}, start)
	return syms, err
}

// Run relays a passthrough invocation (daemon, inspect). The tool's exit
// code lands in the result; only spawn-level problems are errors.
func (s *Service) Run(ctx context.Context, args ...string) (ports.RawResult, error) {
	start := time.Now()
	res, err := s.runner.Run(ctx, args...)

	op := "raw"
	if len(args) > 0 {
		op = args[0]
	}
	outcome := outcomeOf(err)
	if err == nil && res.ExitCode != 0 {
		outcome = ports.OutcomeExecFailed
	}
	s.record(ports.QueryEvent{
		Op:      op,
		Detail:  strings.Join(args, " "),
		Outcome: outcome,
	}, start)
	return res, err
}

// Close releases the activity store, if any.
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

// record persists an event, filling the timing fields.
// Store failures are silently ignored; recording is best-effort.
func (s *Service) record(ev ports.QueryEvent, start time.Time) {
	if s.store == nil {
		return
	}
	ev.At = start
	ev.Duration = time.Since(start)
	_ = s.store.RecordQuery(s.WorkspaceID(), ev)
}

// outcomeOf maps the error taxonomy onto stored outcomes. Spawn-level
// failures outside the taxonomy count as exec-failed.
func outcomeOf(err error) ports.Outcome {
	switch {
	case err == nil:
		return ports.OutcomeOK
	case errors.Is(err, ports.ErrBinaryNotFound):
		return ports.OutcomeNotFound
	default:
		var malformed *ports.MalformedOutputError
		if errors.As(err, &malformed) {
			return ports.OutcomeMalformed
		}
		return ports.OutcomeExecFailed
	}
}
