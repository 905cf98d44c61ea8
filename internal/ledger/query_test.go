package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketbook/internal/common"
	"pocketbook/internal/model"
)

func sampleExpenses() []model.Expense {
	return []model.Expense{
		{ID: 1, Category: "Food", Amount: 42.50, Date: date("2024-03-10"), Description: "Groceries"},
		{ID: 2, Category: "Transport", Amount: 15, Date: date("2024-03-12"), Description: "Bus pass"},
		{ID: 3, Category: "Food", Amount: 18.20, Date: date("2024-02-28"), Description: "Takeout dinner"},
		{ID: 4, Category: "Rent", Amount: 900, Date: date("2024-03-01"), Description: "March rent"},
	}
}

func TestFilterExpenses(t *testing.T) {
	t.Run("exact match on text field", func(t *testing.T) {
		got, err := FilterExpenses(sampleExpenses(), "category", "Food")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("exact match on numeric field", func(t *testing.T) {
		got, err := FilterExpenses(sampleExpenses(), "amount", "900")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 4, got[0].ID)
	})

	t.Run("non-numeric value never matches a numeric field", func(t *testing.T) {
		got, err := FilterExpenses(sampleExpenses(), "amount", "nine hundred")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("case matters for exact match", func(t *testing.T) {
		got, err := FilterExpenses(sampleExpenses(), "category", "food")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := FilterExpenses(sampleExpenses(), "merchant", "x")
		assert.ErrorIs(t, err, common.ErrUnknownField)
	})
}

func TestSearchExpenses(t *testing.T) {
	t.Run("case-insensitive substring", func(t *testing.T) {
		got, err := SearchExpenses(sampleExpenses(), "description", "DINNER")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("matches the rendered form of amounts", func(t *testing.T) {
		// Listings show 42.5 as "42.50"; searching that form must hit.
		got, err := SearchExpenses(sampleExpenses(), "amount", "42.50")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)

		// A whole amount still renders with two decimals.
		got, err = SearchExpenses(sampleExpenses(), "amount", "15.00")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("ids render as plain integers", func(t *testing.T) {
		got, err := SearchExpenses(sampleExpenses(), "id", "2")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("matches the rendered form of dates", func(t *testing.T) {
		got, err := SearchExpenses(sampleExpenses(), "date", "2024-03")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := SearchExpenses(sampleExpenses(), "note", "x")
		assert.ErrorIs(t, err, common.ErrUnknownField)
	})
}

func TestSortExpenses(t *testing.T) {
	t.Run("ascending and descending are exact reverses", func(t *testing.T) {
		asc, err := SortExpenses(sampleExpenses(), "amount", false)
		require.NoError(t, err)
		desc, err := SortExpenses(sampleExpenses(), "amount", true)
		require.NoError(t, err)

		require.Len(t, asc, 4)
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
		assert.Equal(t, 2, asc[0].ID)
		assert.Equal(t, 4, asc[3].ID)
	})

	t.Run("numeric order, not lexicographic", func(t *testing.T) {
		got, err := SortExpenses(sampleExpenses(), "amount", false)
		require.NoError(t, err)
		// 15 < 18.20 < 42.50 < 900; a lexicographic sort would put 900 before 15.
		assert.Equal(t, []int{2, 3, 1, 4}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	})

	t.Run("chronological order for dates", func(t *testing.T) {
		got, err := SortExpenses(sampleExpenses(), "date", false)
		require.NoError(t, err)
		assert.Equal(t, 3, got[0].ID)
		assert.Equal(t, 2, got[3].ID)
	})

	t.Run("stable under ties", func(t *testing.T) {
		expenses := []model.Expense{
			{ID: 1, Category: "Food", Amount: 10},
			{ID: 2, Category: "Rent", Amount: 10},
			{ID: 3, Category: "Food", Amount: 5},
		}
		got, err := SortExpenses(expenses, "amount", false)
		require.NoError(t, err)
		// The two 10s keep their insertion order.
		assert.Equal(t, []int{3, 1, 2}, []int{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		expenses := sampleExpenses()
		_, err := SortExpenses(expenses, "amount", false)
		require.NoError(t, err)
		assert.Equal(t, 1, expenses[0].ID)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := SortExpenses(sampleExpenses(), "vendor", false)
		assert.ErrorIs(t, err, common.ErrUnknownField)
	})
}

func TestIncomeQueries(t *testing.T) {
	incomes := []model.Income{
		{ID: 1, Source: "Salary", Amount: 1000, Date: date("2024-03-05"), Description: "March pay"},
		{ID: 2, Source: "Freelance", Amount: 500, Date: date("2024-04-01"), Description: "Site build"},
	}

	got, err := FilterIncomes(incomes, "source", "Salary")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	got, err = SearchIncomes(incomes, "source", "lance")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	sorted, err := SortIncomes(incomes, "amount", false)
	require.NoError(t, err)
	assert.Equal(t, 2, sorted[0].ID)
}

func TestBudgetQueries(t *testing.T) {
	budgets := []model.Budget{
		{ID: 1, Category: "Food", Amount: 200},
		{ID: 2, Category: "Transport", Amount: 80},
	}

	got, err := FilterBudgets(budgets, "amount", "80")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	// Budgets have no date field.
	_, err = SortBudgets(budgets, "date", false)
	assert.ErrorIs(t, err, common.ErrUnknownField)
}
