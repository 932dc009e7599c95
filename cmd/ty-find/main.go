// ty-find is a thin launcher for the real ty-find binary. Installed on
// PATH, it probes the fixed locations a distribution uses and hands the
// process over, so integrations can invoke "ty-find" without knowing
// where the tool actually lives. It never searches PATH: the launcher
// itself is named ty-find, and a PATH walk could find it again.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tyfind/tyfind/internal/adapters/tycli"
	"github.com/tyfind/tyfind/internal/ports"
)

// exitNotFound mirrors the shell convention for command-not-found.
const exitNotFound = 127

func main() {
	resolver := tycli.NewFixedResolver()

	bin, err := resolver.Resolve()
	if err != nil {
		if errors.Is(err, ports.ErrBinaryNotFound) {
			fmt.Fprintln(os.Stderr, "ty-find: real binary not found")
			fmt.Fprintln(os.Stderr, "Searched:")
			for _, cand := range resolver.Candidates() {
				fmt.Fprintf(os.Stderr, "  %s\n", cand)
			}
			fmt.Fprintln(os.Stderr, "Install ty-find into one of these locations.")
		} else {
			fmt.Fprintf(os.Stderr, "ty-find: %v\n", err)
		}
		os.Exit(exitNotFound)
	}

	if err := delegate(bin, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ty-find: exec %s: %v\n", bin, err)
		os.Exit(1)
	}
}
