package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/errormind/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the signed-in learner's attempt diagnoses",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		u, err := s.Session().Current(ctx)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if u == nil {
			fmt.Println("No one is signed in. Launch the app and sign in first.")
			return nil
		}

		records, err := s.Events().ListAttempts(ctx, u.ID, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-24s  %-16s  %5s  %8s  %s\n",
			"Timestamp", "Task", "Outcome", "Steps", "Ms", "FB")
		fmt.Println(strings.Repeat("─", 90))

		for _, r := range records {
			fb := ""
			if r.Fallback {
				fb = "*"
			}
			task := r.TaskID
			if len(task) > 24 {
				task = task[:24]
			}
			fmt.Printf("%-19s  %-24s  %-16s  %5d  %8d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				task, r.ErrorType, r.StepCount, r.TotalMs, fb)
		}

		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
