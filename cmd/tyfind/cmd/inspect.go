package cmd

import (
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <symbol>... [args...]",
	Short: "Full report on symbols: definition, type, and references",
	Long: "Relays the inspect command to the ty-find tool unchanged.\n" +
		"For each symbol the tool combines definition, hover, and reference lookups.",
	Args:          cobra.MinimumNArgs(1),
	RunE:          runInspect,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	inspectCmd.Flags().SetInterspersed(false)
}

func runInspect(cmd *cobra.Command, args []string) error {
	return runPassthrough(append([]string{"inspect"}, args...))
}
