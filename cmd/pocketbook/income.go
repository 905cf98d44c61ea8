package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/ledger"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income entries",
		Long:  `Add, list, update, and delete income entries.`,
	}

	cmd.AddCommand(incomeAddCmd())
	cmd.AddCommand(incomeListCmd())
	cmd.AddCommand(incomeUpdateCmd())
	cmd.AddCommand(incomeDeleteCmd())

	return cmd
}

func incomeAddCmd() *cobra.Command {
	var (
		source      string
		amount      string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new income entry",
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

			income, err := l.CreateIncome(cmd.Context(), source, amountValue, dateValue, description)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded income %q (ID: %d)", income.Source, income.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "where the money came from")
	cmd.Flags().StringVar(&amount, "amount", "", "amount received")
	cmd.Flags().StringVar(&date, "date", "", "date received (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "free-form note")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func incomeListCmd() *cobra.Command {
	var (
		filterFlag string
		searchFlag string
		sortFlag   string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List income entries",
		Long: `List income entries, optionally narrowed or ordered.

Fields: id, source, amount, date, description.

Examples:
  pocketbook income list
  pocketbook income list --filter source=Salary
  pocketbook income list --search description=bonus
  pocketbook income list --sort amount --desc`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			incomes, err := l.Incomes(cmd.Context())
			if err != nil {
				return err
			}

			if filterFlag != "" {
				key, value, err := splitKeyValue(filterFlag)
				if err != nil {
					return err
				}
				if incomes, err = ledger.FilterIncomes(incomes, key, value); err != nil {
					return err
				}
			}
			if searchFlag != "" {
				key, query, err := splitKeyValue(searchFlag)
				if err != nil {
					return err
				}
				if incomes, err = ledger.SearchIncomes(incomes, key, query); err != nil {
					return err
				}
			}
			if sortFlag != "" {
				if incomes, err = ledger.SortIncomes(incomes, sortFlag, descending); err != nil {
					return err
				}
			}

			cli.RenderIncomes(os.Stdout, incomes)
			return nil
		},
	}

	cmd.Flags().StringVar(&filterFlag, "filter", "", "keep entries whose field equals a value (key=value)")
	cmd.Flags().StringVar(&searchFlag, "search", "", "keep entries whose field contains text (key=query)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "order entries by this field")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort in descending order")

	return cmd
}

func incomeUpdateCmd() *cobra.Command {
	var (
		source      string
		amount      string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an income entry",
		Long: `Replace every field of the income entry with the given id.
Updating an id that does not exist changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid income ID: %w", err)
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

			if err := l.UpdateIncome(cmd.Context(), id, source, amountValue, dateValue, description); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated income %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "where the money came from")
	cmd.Flags().StringVar(&amount, "amount", "", "amount received")
	cmd.Flags().StringVar(&date, "date", "", "date received (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "free-form note")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func incomeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income entry",
		Long:  `Delete the income entry with the given id. Deleting a missing id changes nothing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid income ID: %w", err)
			}

			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := l.DeleteIncome(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted income %d", id)))
			return nil
		},
	}
}
