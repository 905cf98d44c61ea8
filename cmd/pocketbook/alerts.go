package main

import (
	"os"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
)

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Check budgets against recorded spending",
		Long: `Compare total spending per category against its budget.
Categories over their limit are flagged, and categories within ten
percent of the limit get an early warning.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			exceeded, err := l.CheckBudgetExceeded(cmd.Context())
			if err != nil {
				return err
			}
			approaching, err := l.DetectUnusualExpenses(cmd.Context())
			if err != nil {
				return err
			}

			cli.RenderAlerts(os.Stdout, exceeded, approaching)
			return nil
		},
	}
}
