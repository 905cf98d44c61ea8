// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"pocketbook/internal/model"
)

// Store defines the contract for our persistence layer. Each Load
// returns the full collection in storage order; a missing underlying
// resource yields an empty collection, never an error. Each Save fully
// overwrites the underlying resource.
type Store interface {
	// Income operations
	LoadIncomes(ctx context.Context) ([]model.Income, error)
	SaveIncomes(ctx context.Context, incomes []model.Income) error

	// Expense operations
	LoadExpenses(ctx context.Context) ([]model.Expense, error)
	SaveExpenses(ctx context.Context, expenses []model.Expense) error

	// Budget operations
	LoadBudgets(ctx context.Context) ([]model.Budget, error)
	SaveBudgets(ctx context.Context, budgets []model.Budget) error

	Close() error
}
