package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocketbook/internal/model"
)

func testModel() Model {
	return NewModel(
		[]model.Income{{ID: 1, Source: "Salary", Amount: 1000}},
		[]model.Expense{{ID: 1, Category: "Food", Amount: 42.5}},
		[]model.Budget{{ID: 1, Category: "Food", Amount: 200}},
	)
}

func TestViewShowsActiveTab(t *testing.T) {
	m := testModel()

	view := m.View()
	assert.Contains(t, view, "Incomes")
	assert.Contains(t, view, "Salary")
	assert.NotContains(t, view, "42.50")
}

func TestTabSwitching(t *testing.T) {
	m := testModel()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	updated, ok := next.(Model)
	require.True(t, ok)

	assert.Equal(t, tabExpenses, updated.active)
	assert.Contains(t, updated.View(), "42.50")

	// shift+tab wraps back around.
	prev, _ := updated.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	back, ok := prev.(Model)
	require.True(t, ok)
	assert.Equal(t, tabIncomes, back.active)
}

func TestQuitKeys(t *testing.T) {
	m := testModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
