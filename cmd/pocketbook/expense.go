package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/ledger"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expense entries",
		Long:  `Add, list, update, and delete expense entries.`,
	}

	cmd.AddCommand(expenseAddCmd())
	cmd.AddCommand(expenseListCmd())
	cmd.AddCommand(expenseUpdateCmd())
	cmd.AddCommand(expenseDeleteCmd())

	return cmd
}

func expenseAddCmd() *cobra.Command {
	var (
		category    string
		amount      string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			amountValue, err := ledger.ParseAmount(amount)
			if err != nil {
				return err
			}
			dateValue, err := ledger.ParseDate(date)
			if err != nil {
				return err
			}

			expense, err := l.CreateExpense(cmd.Context(), category, amountValue, dateValue, description)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded expense in %q (ID: %d)", expense.Category, expense.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "spending category")
	cmd.Flags().StringVar(&amount, "amount", "", "amount spent")
	cmd.Flags().StringVar(&date, "date", "", "date spent (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "free-form note")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func expenseListCmd() *cobra.Command {
	var (
		filterFlag string
		searchFlag string
		sortFlag   string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expense entries",
		Long: `List expense entries, optionally narrowed or ordered.

Fields: id, category, amount, date, description.

Examples:
  pocketbook expense list
  pocketbook expense list --filter category=Food
  pocketbook expense list --search description=coffee
  pocketbook expense list --sort date --desc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			expenses, err := l.Expenses(cmd.Context())
			if err != nil {
				return err
			}

			if filterFlag != "" {
				key, value, err := splitKeyValue(filterFlag)
				if err != nil {
					return err
				}
				if expenses, err = ledger.FilterExpenses(expenses, key, value); err != nil {
					return err
				}
			}
			if searchFlag != "" {
				key, query, err := splitKeyValue(searchFlag)
				if err != nil {
					return err
				}
				if expenses, err = ledger.SearchExpenses(expenses, key, query); err != nil {
					return err
				}
			}
			if sortFlag != "" {
				if expenses, err = ledger.SortExpenses(expenses, sortFlag, descending); err != nil {
					return err
				}
			}

			cli.RenderExpenses(os.Stdout, expenses)
			return nil
		},
	}

	cmd.Flags().StringVar(&filterFlag, "filter", "", "keep entries whose field equals a value (key=value)")
	cmd.Flags().StringVar(&searchFlag, "search", "", "keep entries whose field contains text (key=query)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "order entries by this field")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort in descending order")

	return cmd
}

func expenseUpdateCmd() *cobra.Command {
	var (
		category    string
		amount      string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an expense entry",
		Long: `Replace every field of the expense entry with the given id.
Updating an id that does not exist changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid expense ID: %w", err)
			}

			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			amountValue, err := ledger.ParseAmount(amount)
			if err != nil {
				return err
			}
			dateValue, err := ledger.ParseDate(date)
			if err != nil {
				return err
			}

			if err := l.UpdateExpense(cmd.Context(), id, category, amountValue, dateValue, description); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated expense %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "spending category")
	cmd.Flags().StringVar(&amount, "amount", "", "amount spent")
	cmd.Flags().StringVar(&date, "date", "", "date spent (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "free-form note")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func expenseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense entry",
		Long:  `Delete the expense entry with the given id. Deleting a missing id changes nothing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid expense ID: %w", err)
			}

			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := l.DeleteExpense(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted expense %d", id)))
			return nil
		},
	}
}
