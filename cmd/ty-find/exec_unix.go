//go:build unix

package main

import (
	"os"
	"syscall"
)

// delegate replaces this process with the real binary. On success it
// never returns: the tool inherits our argv, environment, and streams,
// and its exit code is the process exit code.
func delegate(bin string, args []string) error {
	argv := append([]string{bin}, args...)
	return syscall.Exec(bin, argv, os.Environ())
}
