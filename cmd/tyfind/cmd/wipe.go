package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tyfind/tyfind/internal/adapters/bbolt"
)

var wipeForce bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Clear recorded activity for this workspace",
	Long:  "Deletes persisted query activity. The ty-find tool and its daemon are untouched.",
	RunE:  runWipe,
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeForce, "force", false, "Skip confirmation prompt")
}

func runWipe(cmd *cobra.Command, args []string) error {
	root := projectRoot()

	if !wipeForce {
		fmt.Printf("⚠ This will delete recorded tyfind activity for %s. Continue? [y/N] ", filepath.Base(root))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("cancelled")
			return nil
		}
	}

	path := dbPath(root)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("⚡ no data to wipe")
		return nil
	}

	store, err := bbolt.NewStore(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	if err := store.DeleteWorkspace(filepath.Base(root)); err != nil {
		store.Close()
		return err
	}
	store.Close()

	fmt.Println("⚡ activity wiped")
	return nil
}
