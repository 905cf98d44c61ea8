// Package tui provides the interactive record browser.
package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/cli"
	"pocketbook/internal/model"
)

// tab indexes into the three record tables.
type tab int

const (
	tabIncomes tab = iota
	tabExpenses
	tabBudgets
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabIncomes:
		return "Incomes"
	case tabExpenses:
		return "Expenses"
	default:
		return "Budgets"
	}
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.SubtleColor).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			MarginTop(1)
)

// Model is the bubbletea model for the record browser: one table per
// entity kind, switched with tab, read-only.
type Model struct {
	tables [tabCount]table.Model
	active tab
}

// NewModel builds the browser from already-loaded collections.
func NewModel(incomes []model.Income, expenses []model.Expense, budgets []model.Budget) Model {
	var m Model
	m.tables[tabIncomes] = newTable(
		[]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Source", Width: 20},
			{Title: "Amount", Width: 10},
			{Title: "Date", Width: 12},
			{Title: "Description", Width: 30},
		},
		incomeRows(incomes),
	)
	m.tables[tabExpenses] = newTable(
		[]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Category", Width: 20},
			{Title: "Amount", Width: 10},
			{Title: "Date", Width: 12},
			{Title: "Description", Width: 30},
		},
		expenseRows(expenses),
	)
	m.tables[tabBudgets] = newTable(
		[]table.Column{
			{Title: "ID", Width: 4},
			{Title: "Category", Width: 20},
			{Title: "Amount", Width: 10},
		},
		budgetRows(budgets),
	)
	m.tables[m.active].Focus()
	return m
}

func newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.PrimaryColor)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(cli.SubtleColor)
	t.SetStyles(styles)
	return t
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.tables[m.active].Blur()
			m.active = (m.active + 1) % tabCount
			m.tables[m.active].Focus()
			return m, nil
		case "shift+tab":
			m.tables[m.active].Blur()
			m.active = (m.active + tabCount - 1) % tabCount
			m.tables[m.active].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	tabs := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		style := inactiveTabStyle
		if t == m.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		m.tables[m.active].View(),
		helpStyle.Render("tab: switch · ↑/↓: move · q: quit"),
	)
}

func incomeRows(incomes []model.Income) []table.Row {
	rows := make([]table.Row, 0, len(incomes))
	for _, in := range incomes {
		rows = append(rows, table.Row{
			strconv.Itoa(in.ID),
			in.Source,
			fmt.Sprintf("%.2f", in.Amount),
			model.FormatDate(in.Date),
			in.Description,
		})
	}
	return rows
}

func expenseRows(expenses []model.Expense) []table.Row {
	rows := make([]table.Row, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, table.Row{
			strconv.Itoa(e.ID),
			e.Category,
			fmt.Sprintf("%.2f", e.Amount),
			model.FormatDate(e.Date),
			e.Description,
		})
	}
	return rows
}

func budgetRows(budgets []model.Budget) []table.Row {
	rows := make([]table.Row, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, table.Row{
			strconv.Itoa(b.ID),
			b.Category,
			fmt.Sprintf("%.2f", b.Amount),
		})
	}
	return rows
}
