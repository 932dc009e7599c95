package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:           "outline <file>",
	Short:         "Show the symbol tree of a file",
	Long:          "Lists every class, function, and method a file defines, as a tree.",
	Args:          cobra.ExactArgs(1),
	RunE:          runOutline,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func runOutline(cmd *cobra.Command, args []string) error {
	file := args[0]

	svc := newService()
	defer svc.Close()

	ctx, cancel := queryContext()
	defer cancel()

	syms, err := svc.DocumentSymbols(ctx, file)
	if err != nil {
		return reportQueryError(err)
	}

	out, err := formatOutline(syms, file, outputFormat())
	if err != nil {
		return usageError("%v", err)
	}
	fmt.Println(out)
	return nil
}
