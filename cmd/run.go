package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/errormind/internal/account"
	"github.com/abhisek/errormind/internal/app"
	"github.com/abhisek/errormind/internal/catalog"
	"github.com/abhisek/errormind/internal/diagnosis"
	"github.com/abhisek/errormind/internal/llm"
	"github.com/abhisek/errormind/internal/screens"
	"github.com/abhisek/errormind/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	acct := account.NewSession(st.Users(), st.Session())
	if err := acct.Restore(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	deps := screens.Deps{
		Account: acct,
		Catalog: cat,
		Users:   st.Users(),
		Notes:   st.Notes(),
		Events:  st.Events(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Attempts will receive a generic offline diagnosis.")
	} else {
		deps.Evaluator = diagnosis.NewEvaluator(provider, diagnosis.DefaultEvaluatorConfig())
	}

	return app.Run(deps)
}
