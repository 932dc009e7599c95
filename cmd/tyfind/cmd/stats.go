package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyfind/tyfind/internal/adapters/bbolt"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show query activity for this workspace",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	store, err := bbolt.NewStore(dbPath(root))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats(workspaceID())
	if err != nil {
		return err
	}
	if stats == nil {
		fmt.Println("⚡ no activity recorded")
		return nil
	}

	fmt.Print(formatActivityStats(stats, workspaceID()))
	return nil
}
