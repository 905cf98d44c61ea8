package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMonthlyReport(t *testing.T) {
	ctx := context.Background()

	t.Run("partitions by calendar month", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.CreateIncome(ctx, "Salary", 1000, date("2024-03-05"), "")
		require.NoError(t, err)
		_, err = l.CreateIncome(ctx, "Freelance", 500, date("2024-04-01"), "")
		require.NoError(t, err)
		_, err = l.CreateExpense(ctx, "Food", 300, date("2024-03-10"), "")
		require.NoError(t, err)

		report, err := l.GenerateMonthlyReport(ctx, 2024, time.March)
		require.NoError(t, err)
		assert.Equal(t, 2024, report.Year)
		assert.Equal(t, time.March, report.Month)
		assert.Equal(t, 1000.0, report.TotalIncome)
		assert.Equal(t, 300.0, report.TotalExpense)
		assert.Equal(t, 700.0, report.Savings)
	})

	t.Run("savings may be negative", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.CreateIncome(ctx, "Salary", 100, date("2024-03-05"), "")
		require.NoError(t, err)
		_, err = l.CreateExpense(ctx, "Rent", 900, date("2024-03-01"), "")
		require.NoError(t, err)

		report, err := l.GenerateMonthlyReport(ctx, 2024, time.March)
		require.NoError(t, err)
		assert.Equal(t, -800.0, report.Savings)
	})

	t.Run("undated records count toward neither total", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.CreateIncome(ctx, "Cash", 250, time.Time{}, "")
		require.NoError(t, err)
		_, err = l.CreateExpense(ctx, "Misc", 50, time.Time{}, "")
		require.NoError(t, err)

		report, err := l.GenerateMonthlyReport(ctx, 2024, time.March)
		require.NoError(t, err)
		assert.Zero(t, report.TotalIncome)
		assert.Zero(t, report.TotalExpense)
	})

	t.Run("same month of a different year is excluded", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.CreateExpense(ctx, "Food", 75, date("2023-03-15"), "")
		require.NoError(t, err)

		report, err := l.GenerateMonthlyReport(ctx, 2024, time.March)
		require.NoError(t, err)
		assert.Zero(t, report.TotalExpense)
	})
}
