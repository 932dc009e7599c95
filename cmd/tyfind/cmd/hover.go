package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	hoverLine   int
	hoverColumn int
)

var hoverCmd = &cobra.Command{
	Use:           "hover <file>",
	Short:         "Show type information for the symbol at a position",
	Args:          cobra.ExactArgs(1),
	RunE:          runHover,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := hoverCmd.Flags()
	f.IntVarP(&hoverLine, "line", "l", 0, "1-based line of the cursor position")
	f.IntVarP(&hoverColumn, "column", "c", 0, "1-based column of the cursor position")
}

func runHover(cmd *cobra.Command, args []string) error {
	if hoverLine < 1 || hoverColumn < 1 {
		return usageError("--line and --column are required and 1-based")
	}
	file := args[0]

	svc := newService()
	defer svc.Close()

	ctx, cancel := queryContext()
	defer cancel()

	h, err := svc.Hover(ctx, file, hoverLine, hoverColumn)
	if err != nil {
		return reportQueryError(err)
	}

	queryInfo := fmt.Sprintf("%s:%d:%d", file, hoverLine, hoverColumn)
	out, err := formatHover(h, queryInfo, outputFormat())
	if err != nil {
		return usageError("%v", err)
	}
	fmt.Println(out)
	return nil
}
