package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tyfind/tyfind/internal/adapters/bbolt"
	"github.com/tyfind/tyfind/internal/adapters/fsnotify"
	"github.com/tyfind/tyfind/internal/adapters/mcp"
	"github.com/tyfind/tyfind/internal/adapters/tycli"
	"github.com/tyfind/tyfind/internal/app"
	"github.com/tyfind/tyfind/internal/ports"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve queries as MCP tools on stdio",
	Long: "Runs an MCP server exposing definition, reference, and symbol\n" +
		"queries to editor agents. Intended to be launched by an MCP client.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	ws := workspaceRoot()
	resolver := newResolver()

	// Long-lived host: cache resolution, with candidate-directory watch
	// so a new install wins without a restart.
	cached := app.NewCachedResolver(resolver)
	if watcher, err := fsnotify.NewWatcher(); err == nil {
		if err := cached.WatchInvalidate(watcher, watchDirs(resolver.Candidates())); err != nil && verbose() {
			fmt.Fprintf(os.Stderr, "binary watch unavailable: %v\n", err)
		}
		defer watcher.Stop()
	} else if verbose() {
		fmt.Fprintf(os.Stderr, "binary watch unavailable: %v\n", err)
	}

	bridge := tycli.NewBridge(cached, ws)

	var store ports.ActivityStore
	if s, err := bbolt.NewStore(dbPath(projectRoot())); err == nil {
		store = s
	} else if verbose() {
		fmt.Fprintf(os.Stderr, "activity store unavailable: %v\n", err)
	}

	svc := app.NewService(bridge, bridge, store, ws)
	defer svc.Close()

	return mcp.NewServer(svc).Serve(cmd.Context())
}

// watchDirs maps candidate binary paths to their parent directories,
// deduplicated in order.
func watchDirs(candidates []string) []string {
	seen := make(map[string]struct{})
	dirs := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		dir := filepath.Dir(cand)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}
