//go:build windows

package main

import (
	"errors"
	"os"
	"os/exec"
)

// delegate runs the real binary as a child with inherited streams, then
// exits with its status. Windows has no execve, so process replacement
// is emulated by waiting.
func delegate(bin string, args []string) error {
	cmd := exec.Command(bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		os.Exit(0)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	return err
}
