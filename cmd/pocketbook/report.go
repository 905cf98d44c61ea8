package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <year> <month>",
		Short: "Show a monthly income and savings summary",
		Long: `Sum every dated income and expense that falls inside the given
calendar month and show totals alongside the resulting savings.

Example:
  pocketbook report 2024 3`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year: %w", err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month: %w", err)
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month: %d is not between 1 and 12", month)
			}

			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			report, err := l.GenerateMonthlyReport(cmd.Context(), year, time.Month(month))
			if err != nil {
				return err
			}

			cli.RenderReport(os.Stdout, report)
			return nil
		},
	}
}
