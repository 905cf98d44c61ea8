// Package ledger implements the finance service: validation, id
// assignment, CRUD orchestration, querying, monthly reporting, and
// budget notifications. It never touches the flat files directly; all
// persistence goes through a service.Store, and every mutation is a
// full load-modify-save cycle over one collection.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pocketbook/internal/model"
	"pocketbook/internal/service"
)

// Ledger coordinates all record operations against a single store.
// It holds no state beyond the store handle and a clock, so a single
// instance can be constructed once and passed to every operation.
type Ledger struct {
	store service.Store
	now   func() time.Time
}

// New creates a Ledger backed by the given store.
func New(store service.Store) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
	}
}

// nextID returns the id for a newly created record: one greater than
// the highest id currently in the collection, or 1 when it is empty.
// Deleting the highest-numbered record frees its id for the next
// create.
func nextID[T any](records []T, id func(T) int) int {
	next := 1
	for _, r := range records {
		if id(r) >= next {
			next = id(r) + 1
		}
	}
	return next
}

// CreateIncome validates the fields, assigns an id, and appends a new
// income record to the persisted collection.
func (l *Ledger) CreateIncome(ctx context.Context, source string, amount float64, date time.Time, description string) (*model.Income, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if err := l.validateDate(date); err != nil {
		return nil, err
	}

	incomes, err := l.store.LoadIncomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}

	income := model.Income{
		ID:          nextID(incomes, func(in model.Income) int { return in.ID }),
		Source:      source,
		Amount:      amount,
		Date:        date,
		Description: description,
	}

	incomes = append(incomes, income)
	if err := l.store.SaveIncomes(ctx, incomes); err != nil {
		return nil, fmt.Errorf("failed to save incomes: %w", err)
	}

	slog.Debug("created income", "id", income.ID, "source", source, "amount", amount)
	return &income, nil
}

// UpdateIncome replaces the income with the given id wholesale. When no
// record carries the id the collection is left unchanged and no error
// is returned.
func (l *Ledger) UpdateIncome(ctx context.Context, id int, source string, amount float64, date time.Time, description string) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := l.validateDate(date); err != nil {
		return err
	}

	incomes, err := l.store.LoadIncomes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load incomes: %w", err)
	}

	for i, in := range incomes {
		if in.ID == id {
			incomes[i] = model.Income{
				ID:          id,
				Source:      source,
				Amount:      amount,
				Date:        date,
				Description: description,
			}
			break
		}
	}

	if err := l.store.SaveIncomes(ctx, incomes); err != nil {
		return fmt.Errorf("failed to save incomes: %w", err)
	}
	return nil
}

// DeleteIncome removes the income with the given id. Deleting an id
// that is absent is a no-op, not an error.
func (l *Ledger) DeleteIncome(ctx context.Context, id int) error {
	incomes, err := l.store.LoadIncomes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load incomes: %w", err)
	}

	kept := incomes[:0]
	for _, in := range incomes {
		if in.ID != id {
			kept = append(kept, in)
		}
	}

	if err := l.store.SaveIncomes(ctx, kept); err != nil {
		return fmt.Errorf("failed to save incomes: %w", err)
	}
	return nil
}

// Incomes returns the full income collection in storage order.
func (l *Ledger) Incomes(ctx context.Context) ([]model.Income, error) {
	return l.store.LoadIncomes(ctx)
}

// CreateExpense validates the fields, assigns an id, and appends a new
// expense record to the persisted collection.
func (l *Ledger) CreateExpense(ctx context.Context, category string, amount float64, date time.Time, description string) (*model.Expense, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if err := l.validateDate(date); err != nil {
		return nil, err
	}

	expenses, err := l.store.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expense := model.Expense{
		ID:          nextID(expenses, func(e model.Expense) int { return e.ID }),
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
	}

	expenses = append(expenses, expense)
	if err := l.store.SaveExpenses(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	slog.Debug("created expense", "id", expense.ID, "category", category, "amount", amount)
	return &expense, nil
}

// UpdateExpense replaces the expense with the given id wholesale. A
// missing id leaves the collection unchanged.
func (l *Ledger) UpdateExpense(ctx context.Context, id int, category string, amount float64, date time.Time, description string) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if err := l.validateDate(date); err != nil {
		return err
	}

	expenses, err := l.store.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	for i, e := range expenses {
		if e.ID == id {
			expenses[i] = model.Expense{
				ID:          id,
				Category:    category,
				Amount:      amount,
				Date:        date,
				Description: description,
			}
			break
		}
	}

	if err := l.store.SaveExpenses(ctx, expenses); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	return nil
}

// DeleteExpense removes the expense with the given id, silently doing
// nothing when the id is absent.
func (l *Ledger) DeleteExpense(ctx context.Context, id int) error {
	expenses, err := l.store.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}

	if err := l.store.SaveExpenses(ctx, kept); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	return nil
}

// Expenses returns the full expense collection in storage order.
func (l *Ledger) Expenses(ctx context.Context) ([]model.Expense, error) {
	return l.store.LoadExpenses(ctx)
}

// CreateBudget validates the fields, assigns an id, and appends a new
// budget record. Budgets carry no date, so only the amount is checked.
func (l *Ledger) CreateBudget(ctx context.Context, category string, amount float64) (*model.Budget, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	budgets, err := l.store.LoadBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	budget := model.Budget{
		ID:       nextID(budgets, func(b model.Budget) int { return b.ID }),
		Category: category,
		Amount:   amount,
	}

	budgets = append(budgets, budget)
	if err := l.store.SaveBudgets(ctx, budgets); err != nil {
		return nil, fmt.Errorf("failed to save budgets: %w", err)
	}

	slog.Debug("created budget", "id", budget.ID, "category", category, "amount", amount)
	return &budget, nil
}

// UpdateBudget replaces the budget with the given id wholesale. A
// missing id leaves the collection unchanged.
func (l *Ledger) UpdateBudget(ctx context.Context, id int, category string, amount float64) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	budgets, err := l.store.LoadBudgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}

	for i, b := range budgets {
		if b.ID == id {
			budgets[i] = model.Budget{
				ID:       id,
				Category: category,
				Amount:   amount,
			}
			break
		}
	}

	if err := l.store.SaveBudgets(ctx, budgets); err != nil {
		return fmt.Errorf("failed to save budgets: %w", err)
	}
	return nil
}

// DeleteBudget removes the budget with the given id, silently doing
// nothing when the id is absent.
func (l *Ledger) DeleteBudget(ctx context.Context, id int) error {
	budgets, err := l.store.LoadBudgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}

	kept := budgets[:0]
	for _, b := range budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}

	if err := l.store.SaveBudgets(ctx, kept); err != nil {
		return fmt.Errorf("failed to save budgets: %w", err)
	}
	return nil
}

// Budgets returns the full budget collection in storage order.
func (l *Ledger) Budgets(ctx context.Context) ([]model.Budget, error) {
	return l.store.LoadBudgets(ctx)
}
