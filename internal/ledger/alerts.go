package ledger

import (
	"context"
	"fmt"
)

// Alert reports one category whose all-time spending tripped a budget
// rule. Spent is the category's expense total, Budget the allocated
// ceiling.
type Alert struct {
	Category string
	Budget   float64
	Spent    float64
}

// approachingThreshold is the fraction of a budget at which spending
// starts to warrant a warning.
const approachingThreshold = 0.9

// CheckBudgetExceeded returns one alert per category whose total
// spending strictly exceeds its budget. Totals cover the entire
// expense history, not a single month. Categories without a budget are
// skipped; duplicate budgets resolve to the last-seen amount.
func (l *Ledger) CheckBudgetExceeded(ctx context.Context) ([]Alert, error) {
	spent, budgets, err := l.spendingByCategory(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []Alert
	for _, b := range budgets {
		if spent[b.category] > b.amount {
			alerts = append(alerts, Alert{
				Category: b.category,
				Budget:   b.amount,
				Spent:    spent[b.category],
			})
		}
	}
	return alerts, nil
}

// DetectUnusualExpenses returns one warning per category whose total
// spending has reached 90% of its budget but not the budget itself.
// Once spending reaches or exceeds the budget the category belongs to
// CheckBudgetExceeded instead. A zero budget is skipped.
func (l *Ledger) DetectUnusualExpenses(ctx context.Context) ([]Alert, error) {
	spent, budgets, err := l.spendingByCategory(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []Alert
	for _, b := range budgets {
		if b.amount == 0 {
			continue
		}
		total := spent[b.category]
		if total/b.amount >= approachingThreshold && total < b.amount {
			alerts = append(alerts, Alert{
				Category: b.category,
				Budget:   b.amount,
				Spent:    total,
			})
		}
	}
	return alerts, nil
}

type categoryBudget struct {
	category string
	amount   float64
}

// spendingByCategory loads both collections and reduces them to
// all-time expense totals plus the effective budget per category, in
// first-appearance order with last-seen amounts winning on duplicates.
func (l *Ledger) spendingByCategory(ctx context.Context) (map[string]float64, []categoryBudget, error) {
	expenses, err := l.store.LoadExpenses(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	budgets, err := l.store.LoadBudgets(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	spent := make(map[string]float64, len(budgets))
	for _, e := range expenses {
		spent[e.Category] += e.Amount
	}

	effective := make([]categoryBudget, 0, len(budgets))
	index := make(map[string]int, len(budgets))
	for _, b := range budgets {
		if i, ok := index[b.Category]; ok {
			effective[i].amount = b.Amount
			continue
		}
		index[b.Category] = len(effective)
		effective = append(effective, categoryBudget{category: b.Category, amount: b.Amount})
	}

	return spent, effective, nil
}
