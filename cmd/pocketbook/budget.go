package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"pocketbook/internal/cli"
	"pocketbook/internal/ledger"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
		Long:  `Set, list, update, and delete per-category spending limits.`,
	}

	cmd.AddCommand(budgetAddCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetUpdateCmd())
	cmd.AddCommand(budgetDeleteCmd())

	return cmd
}

func budgetAddCmd() *cobra.Command {
	var (
		category string
		amount   string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Set a spending limit for a category",
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

			budget, err := l.CreateBudget(cmd.Context(), category, amountValue)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set budget for %q (ID: %d)", budget.Category, budget.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "spending category")
	cmd.Flags().StringVar(&amount, "amount", "", "spending limit")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func budgetListCmd() *cobra.Command {
	var (
		filterFlag string
		searchFlag string
		sortFlag   string
		descending bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List category budgets",
		Long: `List category budgets, optionally narrowed or ordered.

Fields: id, category, amount.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := l.Budgets(cmd.Context())
			if err != nil {
				return err
			}

			if filterFlag != "" {
				key, value, err := splitKeyValue(filterFlag)
				if err != nil {
					return err
				}
				if budgets, err = ledger.FilterBudgets(budgets, key, value); err != nil {
					return err
				}
			}
			if searchFlag != "" {
				key, query, err := splitKeyValue(searchFlag)
				if err != nil {
					return err
				}
				if budgets, err = ledger.SearchBudgets(budgets, key, query); err != nil {
					return err
				}
			}
			if sortFlag != "" {
				if budgets, err = ledger.SortBudgets(budgets, sortFlag, descending); err != nil {
					return err
				}
			}

			cli.RenderBudgets(os.Stdout, budgets)
			return nil
		},
	}

	cmd.Flags().StringVar(&filterFlag, "filter", "", "keep entries whose field equals a value (key=value)")
	cmd.Flags().StringVar(&searchFlag, "search", "", "keep entries whose field contains text (key=query)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "order entries by this field")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort in descending order")

	return cmd
}

func budgetUpdateCmd() *cobra.Command {
	var (
		category string
		amount   string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a category budget",
		Long: `Replace every field of the budget with the given id.
Updating an id that does not exist changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid budget ID: %w", err)
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

			if err := l.UpdateBudget(cmd.Context(), id, category, amountValue); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated budget %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "spending category")
	cmd.Flags().StringVar(&amount, "amount", "", "spending limit")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category budget",
		Long:  `Delete the budget with the given id. Deleting a missing id changes nothing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid budget ID: %w", err)
			}

			l, store, err := initLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := l.DeleteBudget(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted budget %d", id)))
			return nil
		},
	}
}
