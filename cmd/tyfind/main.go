// tyfind finds Python definitions by driving the external ty-find tool.
// One binary: query commands, daemon passthrough, and an MCP server.
package main

import (
	"os"

	"github.com/tyfind/tyfind/cmd/tyfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if code := cmd.ToolExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
