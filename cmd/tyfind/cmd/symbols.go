package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:           "symbols <query>",
	Short:         "Search the workspace for symbols by name",
	Args:          cobra.ExactArgs(1),
	RunE:          runSymbols,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func runSymbols(cmd *cobra.Command, args []string) error {
	query := args[0]

	svc := newService()
	defer svc.Close()

	ctx, cancel := queryContext()
	defer cancel()

	syms, err := svc.WorkspaceSymbols(ctx, query)
	if err != nil {
		return reportQueryError(err)
	}

	out, err := formatWorkspaceSymbols(syms, query, outputFormat())
	if err != nil {
		return usageError("%v", err)
	}
	fmt.Println(out)
	return nil
}
