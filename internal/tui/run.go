package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pocketbook/internal/ledger"
)

// Run loads all three collections and drives the browser until the
// user quits.
func Run(ctx context.Context, l *ledger.Ledger) error {
	incomes, err := l.Incomes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load incomes: %w", err)
	}
	expenses, err := l.Expenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	budgets, err := l.Budgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}

	program := tea.NewProgram(NewModel(incomes, expenses, budgets), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
