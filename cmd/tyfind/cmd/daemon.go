package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon [start|stop|status] [args...]",
	Short: "Manage the ty-find daemon",
	Long: "Relays daemon subcommands to the ty-find tool unchanged.\n" +
		"The daemon keeps language-server sessions warm between queries.",
	Args:          cobra.ArbitraryArgs,
	RunE:          runDaemon,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Everything after the first positional word belongs to the tool.
	daemonCmd.Flags().SetInterspersed(false)
}

func runDaemon(cmd *cobra.Command, args []string) error {
	return runPassthrough(append([]string{"daemon"}, args...))
}

// runPassthrough relays an invocation to the tool verbatim: streams are
// forwarded untouched and the tool's exit code becomes ours.
func runPassthrough(args []string) error {
	svc := newService()
	defer svc.Close()

	// No timeout: passthrough commands manage their own lifecycle.
	res, err := svc.Run(context.Background(), args...)
	if err != nil {
		return reportQueryError(err)
	}

	os.Stdout.Write(res.Stdout)
	os.Stderr.Write(res.Stderr)
	if res.ExitCode != 0 {
		return toolExit{res.ExitCode}
	}
	return nil
}
