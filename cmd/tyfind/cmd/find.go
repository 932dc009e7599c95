package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <file> <symbol>",
	Short: "Find where a named symbol is defined",
	Long: "Looks up a symbol by name instead of cursor position.\n" +
		"Useful when you know what you are looking for but not where it is used.",
	Args:          cobra.ExactArgs(2),
	RunE:          runFind,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func runFind(cmd *cobra.Command, args []string) error {
	file, symbol := args[0], args[1]

	svc := newService()
	defer svc.Close()

	ctx, cancel := queryContext()
	defer cancel()

	locs, err := svc.FindSymbol(ctx, file, symbol)
	if err != nil {
		return reportQueryError(err)
	}

	out, err := formatLocations(locs, "definition", symbol, outputFormat())
	if err != nil {
		return usageError("%v", err)
	}
	fmt.Println(out)
	return nil
}
