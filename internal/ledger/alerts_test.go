package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketbook/internal/model"
)

func seedFoodBudget(t *testing.T, l *Ledger, spent ...float64) {
	t.Helper()
	ctx := context.Background()

	_, err := l.CreateBudget(ctx, "Food", 200)
	require.NoError(t, err)
	for _, amount := range spent {
		_, err := l.CreateExpense(ctx, "Food", amount, time.Time{}, "")
		require.NoError(t, err)
	}
}

func TestCheckBudgetExceeded(t *testing.T) {
	ctx := context.Background()

	t.Run("alerts when spending strictly exceeds the budget", func(t *testing.T) {
		l, _ := newTestLedger(t)
		seedFoodBudget(t, l, 150, 100)

		alerts, err := l.CheckBudgetExceeded(ctx)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Food", alerts[0].Category)
		assert.Equal(t, 200.0, alerts[0].Budget)
		assert.Equal(t, 250.0, alerts[0].Spent)
	})

	t.Run("spending exactly at the budget does not alert", func(t *testing.T) {
		l, _ := newTestLedger(t)
		seedFoodBudget(t, l, 200)

		alerts, err := l.CheckBudgetExceeded(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("categories without a budget are skipped", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.CreateExpense(ctx, "Gadgets", 9999, time.Time{}, "")
		require.NoError(t, err)

		alerts, err := l.CheckBudgetExceeded(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("totals span the whole history, not one month", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.CreateBudget(ctx, "Food", 200)
		require.NoError(t, err)
		_, err = l.CreateExpense(ctx, "Food", 150, date("2024-01-10"), "")
		require.NoError(t, err)
		_, err = l.CreateExpense(ctx, "Food", 150, date("2024-05-10"), "")
		require.NoError(t, err)

		alerts, err := l.CheckBudgetExceeded(ctx)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, 300.0, alerts[0].Spent)
	})

	t.Run("duplicate budget categories resolve to the last-seen amount", func(t *testing.T) {
		l, _ := newTestLedger(t)

		_, err := l.CreateBudget(ctx, "Food", 100)
		require.NoError(t, err)
		_, err = l.CreateBudget(ctx, "Food", 500)
		require.NoError(t, err)
		_, err = l.CreateExpense(ctx, "Food", 250, time.Time{}, "")
		require.NoError(t, err)

		// 250 exceeds the first budget but not the effective (last) one,
		// and only one alert per category is ever emitted.
		alerts, err := l.CheckBudgetExceeded(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}

func TestDetectUnusualExpenses(t *testing.T) {
	ctx := context.Background()

	t.Run("warns at exactly 90 percent", func(t *testing.T) {
		l, _ := newTestLedger(t)
		seedFoodBudget(t, l, 180)

		alerts, err := l.DetectUnusualExpenses(ctx)
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, "Food", alerts[0].Category)
		assert.Equal(t, 180.0, alerts[0].Spent)
	})

	t.Run("just under 90 percent does not warn", func(t *testing.T) {
		l, _ := newTestLedger(t)
		seedFoodBudget(t, l, 179.99)

		alerts, err := l.DetectUnusualExpenses(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("reaching the budget hands off to the exceeded check", func(t *testing.T) {
		l, _ := newTestLedger(t)
		seedFoodBudget(t, l, 200)

		alerts, err := l.DetectUnusualExpenses(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)

		exceeded, err := l.CheckBudgetExceeded(ctx)
		require.NoError(t, err)
		assert.Empty(t, exceeded) // exactly at budget trips neither check
	})

	t.Run("over budget belongs only to the exceeded check", func(t *testing.T) {
		l, _ := newTestLedger(t)
		seedFoodBudget(t, l, 250)

		warnings, err := l.DetectUnusualExpenses(ctx)
		require.NoError(t, err)
		assert.Empty(t, warnings)

		exceeded, err := l.CheckBudgetExceeded(ctx)
		require.NoError(t, err)
		assert.Len(t, exceeded, 1)
	})

	t.Run("zero budget on disk is skipped", func(t *testing.T) {
		l, store := newTestLedger(t)

		// Amounts are only validated at create/update time; a zero
		// budget can still arrive from the store.
		require.NoError(t, store.SaveBudgets(ctx, []model.Budget{{ID: 1, Category: "Food", Amount: 0}}))

		alerts, err := l.DetectUnusualExpenses(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}
