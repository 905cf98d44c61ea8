// Package testutil provides test fixtures shared across packages.
package testutil

import (
	"context"
	"slices"

	"pocketbook/internal/model"
)

// MemoryStore is an in-memory service.Store for tests. It preserves
// insertion order and copies slices on both load and save so tests can
// mutate their inputs freely.
type MemoryStore struct {
	incomes  []model.Income
	expenses []model.Expense
	budgets  []model.Budget

	// FailSaves makes every Save return this error when non-nil.
	FailSaves error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// LoadIncomes returns a copy of the income collection.
func (s *MemoryStore) LoadIncomes(_ context.Context) ([]model.Income, error) {
	return slices.Clone(s.incomes), nil
}

// SaveIncomes replaces the income collection.
func (s *MemoryStore) SaveIncomes(_ context.Context, incomes []model.Income) error {
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.incomes = slices.Clone(incomes)
	return nil
}

// LoadExpenses returns a copy of the expense collection.
func (s *MemoryStore) LoadExpenses(_ context.Context) ([]model.Expense, error) {
	return slices.Clone(s.expenses), nil
}

// SaveExpenses replaces the expense collection.
func (s *MemoryStore) SaveExpenses(_ context.Context, expenses []model.Expense) error {
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.expenses = slices.Clone(expenses)
	return nil
}

// LoadBudgets returns a copy of the budget collection.
func (s *MemoryStore) LoadBudgets(_ context.Context) ([]model.Budget, error) {
	return slices.Clone(s.budgets), nil
}

// SaveBudgets replaces the budget collection.
func (s *MemoryStore) SaveBudgets(_ context.Context, budgets []model.Budget) error {
	if s.FailSaves != nil {
		return s.FailSaves
	}
	s.budgets = slices.Clone(budgets)
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
