package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tyfind/tyfind/internal/adapters/bbolt"
	"github.com/tyfind/tyfind/internal/adapters/tycli"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the tyfind installation",
	Long:  "Reports binary resolution, configuration, the activity store, and daemon state.",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	resolver := newResolver()

	fmt.Printf("%s⚡ tyfind doctor%s\n", colorBold, colorReset)

	fmt.Println("  Binary candidates (probe order):")
	for _, cand := range resolver.Candidates() {
		status := colorGray + "absent" + colorReset
		if info, err := os.Stat(cand); err == nil && info.Mode().IsRegular() {
			status = colorGreen + "found" + colorReset
		}
		fmt.Printf("    %s  [%s]\n", cand, status)
	}

	resolved, err := resolver.Resolve()
	if err != nil {
		fmt.Printf("  Resolved:   %snot found%s (PATH fallback included)\n", colorYellow, colorReset)
	} else {
		fmt.Printf("  Resolved:   %s%s%s\n", colorGreen, resolved, colorReset)
		reportToolVersion(resolved)
	}

	if ws := workspaceRoot(); ws != "" {
		fmt.Printf("  Workspace:  %s\n", ws)
	} else {
		fmt.Printf("  Workspace:  %s(none)%s\n", colorGray, colorReset)
	}

	if cfg := viper.ConfigFileUsed(); cfg != "" {
		fmt.Printf("  Config:     %s\n", cfg)
	} else {
		fmt.Printf("  Config:     %s(defaults)%s\n", colorGray, colorReset)
	}

	reportStore()

	if err == nil {
		reportDaemon(resolved)
	}

	return nil
}

// reportToolVersion asks the resolved binary for its version string.
// The probe runs without a workspace flag: --version short-circuits
// argument parsing in the tool.
func reportToolVersion(binary string) {
	bridge := tycli.NewBridge(tycli.NewStaticResolver(binary), "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := bridge.Run(ctx, "--version")
	if err != nil || res.ExitCode != 0 {
		return
	}
	line := strings.TrimSpace(string(res.Stdout))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if line != "" {
		fmt.Printf("  Tool:       %s\n", line)
	}
}

// reportStore prints activity-database health for the project root.
func reportStore() {
	path := dbPath(projectRoot())
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("  Activity:   %s(none recorded)%s\n", colorGray, colorReset)
		return
	}

	fmt.Printf("  Activity:   %s (%d KB)\n", path, info.Size()/1024)

	store, err := bbolt.NewStore(path)
	if err != nil {
		fmt.Printf("              %sunreadable: %v%s\n", colorYellow, err, colorReset)
		return
	}
	defer store.Close()

	if stats, err := store.Stats(workspaceID()); err == nil && stats != nil {
		fmt.Printf("              %d queries recorded\n", stats.Total)
	}
}

// reportDaemon asks the tool for its daemon state, briefly.
func reportDaemon(binary string) {
	bridge := tycli.NewBridge(tycli.NewStaticResolver(binary), workspaceRoot())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := bridge.Run(ctx, "daemon", "status")
	if err != nil {
		fmt.Printf("  Daemon:     %sunknown (%v)%s\n", colorYellow, err, colorReset)
		return
	}

	line := strings.TrimSpace(string(res.Stdout))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	switch {
	case res.ExitCode == 0 && line != "":
		fmt.Printf("  Daemon:     %s%s%s\n", colorGreen, line, colorReset)
	case res.ExitCode == 0:
		fmt.Printf("  Daemon:     %srunning%s\n", colorGreen, colorReset)
	default:
		fmt.Printf("  Daemon:     %snot running%s (exit %d)\n", colorGray, colorReset, res.ExitCode)
	}
}
