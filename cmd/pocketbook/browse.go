package main

import (
	"github.com/spf13/cobra"

	"pocketbook/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse entries in an interactive terminal UI",
		Long: `Open a terminal UI with tabs for incomes, expenses, and budgets.
Switch tabs with tab/shift+tab, move with the arrow keys, quit with q.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(cmd.Context(), l)
		},
	}
}
