package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyfind/tyfind/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tyfind version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tyfind %s\n", version.Version)
		fmt.Printf("Git commit: %s\n", version.GitCommit)
		fmt.Printf("Build date: %s\n", version.BuildDate)
	},
}
