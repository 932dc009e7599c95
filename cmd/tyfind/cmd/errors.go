package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tyfind/tyfind/internal/ports"
)

// Exit codes beyond the tool's own: 2 for usage errors (matching the
// tool's argument parser) and 127 for a missing binary (matching shell
// command-not-found).
const (
	exitUsage    = 2
	exitNotFound = 127
)

// toolExit is returned by commands to signal a specific exit code after
// diagnostics have already been printed.
type toolExit struct{ code int }

func (e toolExit) Error() string {
	return fmt.Sprintf("exit %d", e.code)
}

// ToolExitCode extracts the exit code from a toolExit error.
// Returns -1 if the error is not a toolExit.
func ToolExitCode(err error) int {
	var te toolExit
	if errors.As(err, &te) {
		return te.code
	}
	return -1
}

// usageError prints the message and signals exit code 2.
func usageError(format string, args ...interface{}) error {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return toolExit{exitUsage}
}

// reportQueryError renders a query failure for the terminal and maps it
// to the exit-code contract: 127 when the binary is missing, the tool's
// own code when it failed, 1 otherwise.
func reportQueryError(err error) error {
	switch {
	case errors.Is(err, ports.ErrBinaryNotFound):
		fmt.Fprintln(os.Stderr, "Error: ty-find binary not found")
		fmt.Fprintln(os.Stderr, "Searched:")
		for _, c := range newResolver().Candidates() {
			fmt.Fprintf(os.Stderr, "  %s\n", c)
		}
		fmt.Fprintln(os.Stderr, "Install ty-find next to this binary or add it to PATH.")
		return toolExit{exitNotFound}

	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(os.Stderr, "Error: ty-find timed out after %s\n", queryTimeout())
		return toolExit{1}
	}

	var execErr *ports.ExecutionError
	if errors.As(err, &execErr) {
		// Relay the tool's own diagnostics verbatim.
		if stderr := strings.TrimRight(execErr.Stderr, "\n"); stderr != "" {
			fmt.Fprintln(os.Stderr, stderr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: ty-find exited with status %d\n", execErr.ExitCode)
		}
		code := execErr.ExitCode
		if code <= 0 {
			code = 1
		}
		return toolExit{code}
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return toolExit{1}
}
