package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data",
	Long:  "Deletes the local database: accounts, attempt history, notes, and LLM event logs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes %s and all learner data. Re-run with --yes to confirm.\n", dbPath)
			return nil
		}

		removed := false
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			err := os.Remove(p)
			if err == nil {
				removed = true
				continue
			}
			if !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}

		if removed {
			fmt.Println("Local data deleted.")
		} else {
			fmt.Println("Nothing to delete.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
