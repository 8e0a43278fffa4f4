package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/errormind/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the signed-in learner's mistake map",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		fmt.Printf("%s  (%s / Grade %d)\n\n", u.Name, u.AssignedLevel, u.AssignedGrade)

		rows := []struct {
			label string
			value int
		}{
			{"Logical", u.Stats.Logical},
			{"Computational", u.Stats.Computational},
			{"Carelessness", u.Stats.Carelessness},
			{"Strategy", u.Stats.Strategy},
			{"Attention", u.Stats.Attention},
		}

		maxVal := 1
		for _, r := range rows {
			if r.value > maxVal {
				maxVal = r.value
			}
		}

		for _, r := range rows {
			filled := r.value * 24 / maxVal
			bar := strings.Repeat("█", filled) + strings.Repeat("░", 24-filled)
			fmt.Printf("%-15s %s %d\n", r.label, bar, r.value)
		}

		fmt.Printf("\nSolved: %d   Failure vectors: %d\n", len(u.SolvedTaskIDs), len(u.FailedTaskIDs))
		return nil
	},
}
