package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyfind/tyfind/internal/ports"
)

func TestToolExitCode(t *testing.T) {
	assert.Equal(t, 3, ToolExitCode(toolExit{3}))
	assert.Equal(t, 0, ToolExitCode(toolExit{0}))
	assert.Equal(t, -1, ToolExitCode(errors.New("plain")))
	assert.Equal(t, -1, ToolExitCode(nil))
}

func TestToolExitCodeUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("command failed: %w", toolExit{127})
	assert.Equal(t, 127, ToolExitCode(wrapped))
}

func TestReportQueryErrorMissingBinaryExits127(t *testing.T) {
	err := reportQueryError(ports.ErrBinaryNotFound)
	assert.Equal(t, exitNotFound, ToolExitCode(err))
}

func TestReportQueryErrorPropagatesToolExitCode(t *testing.T) {
	err := reportQueryError(&ports.ExecutionError{ExitCode: 2, Stderr: "file not found: missing.py"})
	assert.Equal(t, 2, ToolExitCode(err))
}

func TestReportQueryErrorZeroExitBecomesOne(t *testing.T) {
	// A signal-killed child reports no exit code; never exit 0 on failure.
	err := reportQueryError(&ports.ExecutionError{ExitCode: -1, Stderr: ""})
	assert.Equal(t, 1, ToolExitCode(err))
}

func TestReportQueryErrorMalformedOutputExitsOne(t *testing.T) {
	err := reportQueryError(&ports.MalformedOutputError{Detail: "parse definition output"})
	assert.Equal(t, 1, ToolExitCode(err))
}

func TestReportQueryErrorTimeoutExitsOne(t *testing.T) {
	err := reportQueryError(fmt.Errorf("run: %w", context.DeadlineExceeded))
	assert.Equal(t, 1, ToolExitCode(err))
}

func TestUsageErrorExitsTwo(t *testing.T) {
	err := usageError("--line and --column are required")
	require.Error(t, err)
	assert.Equal(t, exitUsage, ToolExitCode(err))
}
