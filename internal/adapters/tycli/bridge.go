// Package tycli invokes the external ty-find binary. It implements
// ports.Resolver (binary discovery), ports.Finder (typed queries), and
// ports.Runner (raw passthrough) over subprocess spawns: build an argument
// vector, capture stdout and stderr, decode JSON, normalize coordinates.
package tycli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/tyfind/tyfind/internal/ports"
)

// Bridge turns logical queries into ty-find invocations and tool output
// into typed results. The resolution policy and workspace root are fixed
// at construction; each call owns its own child process and buffers, so a
// Bridge is safe for concurrent use.
type Bridge struct {
	resolver  ports.Resolver
	workspace string
}

// NewBridge wires a Bridge to a resolver. workspace, when non-empty, is
// passed to every invocation as the tool's --workspace flag, unmodified.
func NewBridge(resolver ports.Resolver, workspace string) *Bridge {
	return &Bridge{resolver: resolver, workspace: workspace}
}

// buildArgs appends the fixed tail to an operation's arguments: the JSON
// format selector always (the bridge only consumes structured output),
// then the workspace flag when one was configured. The order is part of
// the subprocess contract.
func (b *Bridge) buildArgs(op ...string) []string {
	args := append([]string{}, op...)
	args = append(args, "--format", "json")
	if b.workspace != "" {
		args = append(args, "--workspace", b.workspace)
	}
	return args
}

// run spawns the tool and waits. Both streams are captured separately:
// stdout is the payload, stderr is the tool's only diagnostic surface and
// must survive verbatim into ExecutionError. The bridge imposes no timeout
// of its own; cancelling ctx kills the child.
func (b *Bridge) run(ctx context.Context, args []string) ([]byte, error) {
	bin, err := b.resolver.Resolve()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", binaryName, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ports.ExecutionError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return nil, fmt.Errorf("run %s: %w", binaryName, err)
	}
	return stdout.Bytes(), nil
}

// FindDefinition implements ports.Finder. line and column are forwarded
// one-based, matching the tool's flag convention.
func (b *Bridge) FindDefinition(ctx context.Context, file string, line, column int) ([]ports.Location, error) {
	out, err := b.run(ctx, b.buildArgs(
		"definition", file,
		"--line", strconv.Itoa(line),
		"--column", strconv.Itoa(column),
	))
	if err != nil {
		return nil, err
	}
	return decodeLocations(out)
}

// FindSymbol implements ports.Finder.
func (b *Bridge) FindSymbol(ctx context.Context, file, symbol string) ([]ports.Location, error) {
	out, err := b.run(ctx, b.buildArgs("find", file, symbol))
	if err != nil {
		return nil, err
	}
	return decodeLocations(out)
}

// Hover implements ports.Finder. A nil Hover means the tool had nothing to
// show for the position.
func (b *Bridge) Hover(ctx context.Context, file string, line, column int) (*ports.Hover, error) {
	out, err := b.run(ctx, b.buildArgs(
		"hover", file,
		"--line", strconv.Itoa(line),
		"--column", strconv.Itoa(column),
	))
	if err != nil {
		return nil, err
	}
	return decodeHover(out)
}

// References implements ports.Finder.
func (b *Bridge) References(ctx context.Context, file string, line, column int) ([]ports.Location, error) {
	out, err := b.run(ctx, b.buildArgs(
		"references",
		"--file", file,
		"--line", strconv.Itoa(line),
		"--column", strconv.Itoa(column),
	))
	if err != nil {
		return nil, err
	}
	return decodeLocations(out)
}

// WorkspaceSymbols implements ports.Finder.
func (b *Bridge) WorkspaceSymbols(ctx context.Context, query string) ([]ports.SymbolInformation, error) {
	out, err := b.run(ctx, b.buildArgs("workspace-symbols", "--query", query))
	if err != nil {
		return nil, err
	}
	return decodeSymbolInformations(out)
}

// DocumentSymbols implements ports.Finder.
func (b *Bridge) DocumentSymbols(ctx context.Context, file string) ([]ports.DocumentSymbol, error) {
	out, err := b.run(ctx, b.buildArgs("document-symbols", file))
	if err != nil {
		return nil, err
	}
	return decodeDocumentSymbols(out, file)
}

// Run implements ports.Runner: the raw passthrough path for subcommands
// whose output belongs to the tool (daemon, inspect). Only the workspace
// flag is appended, never the format selector, and nothing is decoded. A
// non-zero exit lands in RawResult, not in the error.
func (b *Bridge) Run(ctx context.Context, args ...string) (ports.RawResult, error) {
	bin, err := b.resolver.Resolve()
	if err != nil {
		return ports.RawResult{}, err
	}

	full := append([]string{}, args...)
	if b.workspace != "" {
		full = append(full, "--workspace", b.workspace)
	}

	cmd := exec.CommandContext(ctx, bin, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := ports.RawResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, fmt.Errorf("%s: %w", binaryName, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("run %s: %w", binaryName, runErr)
	}
	return res, nil
}

// decodeLocations handles the shared result shape of definition, find, and
// references: a JSON array of locations. Whitespace-only output is the
// tool's "no results" answer and is not an error.
func decodeLocations(out []byte) ([]ports.Location, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return []ports.Location{}, nil
	}

	var entries []wireLocation
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &ports.MalformedOutputError{Detail: err.Error(), Err: err}
	}

	locs := make([]ports.Location, 0, len(entries))
	for _, e := range entries {
		loc, err := e.toLocation()
		if err != nil {
			return nil, &ports.MalformedOutputError{Detail: err.Error()}
		}
		locs = append(locs, loc)
	}
	return locs, nil
}

func decodeHover(out []byte) (*ports.Hover, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var wh wireHover
	if err := json.Unmarshal(trimmed, &wh); err != nil {
		return nil, &ports.MalformedOutputError{Detail: err.Error(), Err: err}
	}

	h := &ports.Hover{Contents: ports.MarkupContent(wh.Contents)}
	if wh.Range != nil {
		loc, err := rangeStart("", wh.Range)
		if err != nil {
			return nil, &ports.MalformedOutputError{Detail: err.Error()}
		}
		h.Location = &loc
	}
	return h, nil
}

func decodeSymbolInformations(out []byte) ([]ports.SymbolInformation, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return []ports.SymbolInformation{}, nil
	}

	var entries []wireSymbolInformation
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &ports.MalformedOutputError{Detail: err.Error(), Err: err}
	}

	syms := make([]ports.SymbolInformation, 0, len(entries))
	for _, e := range entries {
		sym, err := e.toSymbolInformation()
		if err != nil {
			return nil, &ports.MalformedOutputError{Detail: err.Error()}
		}
		syms = append(syms, sym)
	}
	return syms, nil
}

func decodeDocumentSymbols(out []byte, file string) ([]ports.DocumentSymbol, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return []ports.DocumentSymbol{}, nil
	}

	var entries []wireDocumentSymbol
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, &ports.MalformedOutputError{Detail: err.Error(), Err: err}
	}

	syms := make([]ports.DocumentSymbol, 0, len(entries))
	for _, e := range entries {
		sym, err := e.toDocumentSymbol(file)
		if err != nil {
			return nil, &ports.MalformedOutputError{Detail: err.Error()}
		}
		syms = append(syms, sym)
	}
	return syms, nil
}
