package ledger

import (
	"context"
	"fmt"
	"time"
)

// MonthlyReport summarizes one calendar month of activity. Savings is
// income minus expenses and may be negative.
type MonthlyReport struct {
	Year         int
	Month        time.Month
	TotalIncome  float64
	TotalExpense float64
	Savings      float64
}

// GenerateMonthlyReport sums incomes and expenses dated within the
// given month. Records without a date are excluded from both totals.
// The report is computed from the persisted collections and has no
// side effects.
func (l *Ledger) GenerateMonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	incomes, err := l.store.LoadIncomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	expenses, err := l.store.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	report := &MonthlyReport{
		Year:  year,
		Month: month,
	}

	for _, in := range incomes {
		if inMonth(in.Date, year, month) {
			report.TotalIncome += in.Amount
		}
	}
	for _, e := range expenses {
		if inMonth(e.Date, year, month) {
			report.TotalExpense += e.Amount
		}
	}

	report.Savings = report.TotalIncome - report.TotalExpense
	return report, nil
}

func inMonth(date time.Time, year int, month time.Month) bool {
	return !date.IsZero() && date.Year() == year && date.Month() == month
}
