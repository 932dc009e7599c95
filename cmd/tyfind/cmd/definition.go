package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	definitionLine   int
	definitionColumn int
)

var definitionCmd = &cobra.Command{
	Use:   "definition <file>",
	Short: "Find where the symbol at a position is defined",
	Long: "Resolves the definition of the symbol under the cursor.\n" +
		"Line and column are 1-based, as shown in editors.",
	Args:          cobra.ExactArgs(1),
	RunE:          runDefinition,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := definitionCmd.Flags()
	f.IntVarP(&definitionLine, "line", "l", 0, "1-based line of the cursor position")
	f.IntVarP(&definitionColumn, "column", "c", 0, "1-based column of the cursor position")
}

func runDefinition(cmd *cobra.Command, args []string) error {
	if definitionLine < 1 || definitionColumn < 1 {
		return usageError("--line and --column are required and 1-based")
	}
	file := args[0]

	svc := newService()
	defer svc.Close()

	ctx, cancel := queryContext()
	defer cancel()

	locs, err := svc.FindDefinition(ctx, file, definitionLine, definitionColumn)
	if err != nil {
		return reportQueryError(err)
	}

	queryInfo := fmt.Sprintf("%s:%d:%d", file, definitionLine, definitionColumn)
	out, err := formatLocations(locs, "definition", queryInfo, outputFormat())
	if err != nil {
		return usageError("%v", err)
	}
	fmt.Println(out)
	return nil
}
