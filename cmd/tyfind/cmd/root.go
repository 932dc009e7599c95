package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tyfind/tyfind/internal/adapters/bbolt"
	"github.com/tyfind/tyfind/internal/adapters/tycli"
	"github.com/tyfind/tyfind/internal/app"
	"github.com/tyfind/tyfind/internal/ports"
)

var (
	flagWorkspace string
	flagFormat    string
	flagTimeout   time.Duration
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "tyfind",
	Short: "tyfind: find Python definitions via the ty language server",
	Long: "tyfind drives the external ty-find tool to answer definition,\n" +
		"reference, and symbol queries against a Python workspace.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagWorkspace, "workspace", "w", "", "Workspace root passed to ty-find (default: none)")
	pf.StringVarP(&flagFormat, "format", "f", "", "Output format: human, json, csv, paths")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Per-query timeout, e.g. 30s (0 disables)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose diagnostics on stderr")

	viper.BindPFlag("workspace", pf.Lookup("workspace"))
	viper.BindPFlag("format", pf.Lookup("format"))
	viper.BindPFlag("timeout", pf.Lookup("timeout"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))

	rootCmd.AddCommand(definitionCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(hoverCmd)
	rootCmd.AddCommand(referencesCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(wipeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig layers configuration: flags over .tyfind.yaml over defaults.
// The config file is searched in the workspace, the current directory,
// and $HOME, in that order.
func initConfig() {
	viper.SetDefault("format", "human")
	viper.SetDefault("timeout", 30*time.Second)

	if flagWorkspace != "" {
		viper.AddConfigPath(flagWorkspace)
	}
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigType("yaml")
	viper.SetConfigName(".tyfind")

	viper.SetEnvPrefix("TYFIND")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose() {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func workspaceRoot() string { return viper.GetString("workspace") }

func outputFormat() string { return viper.GetString("format") }

func queryTimeout() time.Duration { return viper.GetDuration("timeout") }

func verbose() bool { return viper.GetBool("verbose") }

// projectRoot returns the directory that scopes local state: the
// workspace root when configured, the cwd otherwise.
func projectRoot() string {
	if ws := workspaceRoot(); ws != "" {
		return ws
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// dbPath returns the activity database location for a project root.
func dbPath(root string) string {
	return filepath.Join(root, ".tyfind", "tyfind.db")
}

// workspaceID mirrors the scoping the service applies to store records.
func workspaceID() string {
	return filepath.Base(projectRoot())
}

// newResolver builds the binary resolver, honoring a configured
// override ("binary" key or TYFIND_BINARY).
func newResolver() *tycli.Resolver {
	if binary := viper.GetString("binary"); binary != "" {
		return tycli.NewStaticResolver(binary)
	}
	return tycli.NewResolver(workspaceRoot())
}

// newService wires resolver, bridge, and activity store for one
// invocation. A store that cannot be opened disables recording instead
// of failing the command.
func newService() *app.Service {
	ws := workspaceRoot()
	bridge := tycli.NewBridge(newResolver(), ws)

	var store ports.ActivityStore
	if s, err := bbolt.NewStore(dbPath(projectRoot())); err == nil {
		store = s
	} else if verbose() {
		fmt.Fprintf(os.Stderr, "activity store unavailable: %v\n", err)
	}

	return app.NewService(bridge, bridge, store, ws)
}

// queryContext applies the configured timeout.
func queryContext() (context.Context, context.CancelFunc) {
	timeout := queryTimeout()
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
