package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"pocketbook/internal/ledger"
	"pocketbook/internal/model"
)

// RenderIncomes writes a tabular listing of incomes.
func RenderIncomes(w io.Writer, incomes []model.Income) {
	if len(incomes) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No incomes recorded."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	writeHeader(tw, "ID", "Source", "Amount", "Date", "Description")
	for _, in := range incomes {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\n",
			in.ID, in.Source, in.Amount, dateCell(in.Date), in.Description)
	}
}

// RenderExpenses writes a tabular listing of expenses.
func RenderExpenses(w io.Writer, expenses []model.Expense) {
	if len(expenses) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No expenses recorded."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	writeHeader(tw, "ID", "Category", "Amount", "Date", "Description")
	for _, e := range expenses {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%s\n",
			e.ID, e.Category, e.Amount, dateCell(e.Date), e.Description)
	}
}

// RenderBudgets writes a tabular listing of budgets.
func RenderBudgets(w io.Writer, budgets []model.Budget) {
	if len(budgets) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No budgets configured."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	writeHeader(tw, "ID", "Category", "Amount")
	for _, b := range budgets {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\n", b.ID, b.Category, b.Amount)
	}
}

// chartWidth is the width of the longest report bar in cells.
const chartWidth = 40

// RenderReport writes the monthly figures plus a three-bar chart of
// income, expense, and savings.
func RenderReport(w io.Writer, report *ledger.MonthlyReport) {
	fmt.Fprintln(w, FormatTitle(fmt.Sprintf("Report for %s %d", report.Month, report.Year)))

	bars := []struct {
		label string
		value float64
		style lipgloss.Style
	}{
		{"Income", report.TotalIncome, SuccessStyle},
		{"Expense", report.TotalExpense, ErrorStyle},
		{"Savings", report.Savings, savingsStyle(report.Savings)},
	}

	scale := math.Max(report.TotalIncome, report.TotalExpense)
	scale = math.Max(scale, math.Abs(report.Savings))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, bar := range bars {
		fmt.Fprintf(tw, "%s\t%10.2f\t%s\n", bar.label, bar.value, bar.style.Render(barCells(bar.value, scale)))
	}
	tw.Flush()
}

// RenderAlerts writes the notification listing, or an explicit
// no-alerts message when both scans came back empty.
func RenderAlerts(w io.Writer, exceeded, approaching []ledger.Alert) {
	if len(exceeded) == 0 && len(approaching) == 0 {
		fmt.Fprintln(w, FormatSuccess("No alerts. All spending is within budget."))
		return
	}

	for _, a := range exceeded {
		fmt.Fprintln(w, FormatError(fmt.Sprintf(
			"Budget exceeded for %q: spent %.2f of %.2f", a.Category, a.Spent, a.Budget)))
	}
	for _, a := range approaching {
		fmt.Fprintln(w, FormatWarning(fmt.Sprintf(
			"Approaching budget for %q: spent %.2f of %.2f", a.Category, a.Spent, a.Budget)))
	}
}

func writeHeader(w io.Writer, columns ...string) {
	styled := make([]string, len(columns))
	for i, c := range columns {
		styled[i] = HeaderStyle.Render(c)
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))
}

func dateCell(date time.Time) string {
	if date.IsZero() {
		return SubtleStyle.Render("-")
	}
	return model.FormatDate(date)
}

func savingsStyle(savings float64) lipgloss.Style {
	if savings < 0 {
		return ErrorStyle
	}
	return SuccessStyle
}

func barCells(value, scale float64) string {
	if scale <= 0 {
		return ""
	}
	n := int(math.Round(math.Abs(value) / scale * chartWidth))
	if n == 0 && value != 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
