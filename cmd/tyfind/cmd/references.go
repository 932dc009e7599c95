package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	referencesLine   int
	referencesColumn int
)

var referencesCmd = &cobra.Command{
	Use:           "references <file>",
	Short:         "Find every use of the symbol at a position",
	Args:          cobra.ExactArgs(1),
	RunE:          runReferences,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := referencesCmd.Flags()
	f.IntVarP(&referencesLine, "line", "l", 0, "1-based line of the cursor position")
	f.IntVarP(&referencesColumn, "column", "c", 0, "1-based column of the cursor position")
}

func runReferences(cmd *cobra.Command, args []string) error {
	if referencesLine < 1 || referencesColumn < 1 {
		return usageError("--line and --column are required and 1-based")
	}
	file := args[0]

	svc := newService()
	defer svc.Close()

	ctx, cancel := queryContext()
	defer cancel()

	locs, err := svc.References(ctx, file, referencesLine, referencesColumn)
	if err != nil {
		return reportQueryError(err)
	}

	queryInfo := fmt.Sprintf("%s:%d:%d", file, referencesLine, referencesColumn)
	out, err := formatLocations(locs, "reference", queryInfo, outputFormat())
	if err != nil {
		return usageError("%v", err)
	}
	fmt.Println(out)
	return nil
}
