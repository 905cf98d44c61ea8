package ledger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"pocketbook/internal/common"
	"pocketbook/internal/model"
)

// The query operations resolve field names against a closed, per-entity
// table of typed accessors rather than reflecting over struct fields.
// Unknown names fail with common.ErrUnknownField.

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldDate
	fieldID
)

// fieldValue is the typed view of one record attribute.
type fieldValue struct {
	text string
	date time.Time
	num  float64
	kind fieldKind
}

func textField(s string) fieldValue    { return fieldValue{kind: fieldText, text: s} }
func numberField(f float64) fieldValue { return fieldValue{kind: fieldNumber, num: f} }
func dateField(t time.Time) fieldValue { return fieldValue{kind: fieldDate, date: t} }
func idField(n int) fieldValue         { return fieldValue{kind: fieldID, num: float64(n)} }

// String renders the value the way the listings do, so search matches
// what the user sees: amounts with two decimals, ids as plain
// integers, dates as YYYY-MM-DD.
func (v fieldValue) String() string {
	switch v.kind {
	case fieldNumber:
		return strconv.FormatFloat(v.num, 'f', 2, 64)
	case fieldID:
		return strconv.Itoa(int(v.num))
	case fieldDate:
		return model.FormatDate(v.date)
	default:
		return v.text
	}
}

// equals reports whether the raw query value matches exactly. The
// comparison is type-sensitive: a non-numeric value never matches a
// numeric field, and a non-date value never matches a date field.
func (v fieldValue) equals(raw string) bool {
	switch v.kind {
	case fieldNumber, fieldID:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return false
		}
		return v.num == n
	case fieldDate:
		d, err := model.ParseDate(raw)
		if err != nil {
			return false
		}
		return v.date.Equal(d)
	default:
		return v.text == raw
	}
}

// compare orders two values of the same field: numeric for amounts and
// ids, chronological for dates, lexicographic for text.
func (v fieldValue) compare(other fieldValue) int {
	switch v.kind {
	case fieldNumber, fieldID:
		switch {
		case v.num < other.num:
			return -1
		case v.num > other.num:
			return 1
		default:
			return 0
		}
	case fieldDate:
		return v.date.Compare(other.date)
	default:
		return strings.Compare(v.text, other.text)
	}
}

var incomeFields = map[string]func(model.Income) fieldValue{
	"id":          func(in model.Income) fieldValue { return idField(in.ID) },
	"source":      func(in model.Income) fieldValue { return textField(in.Source) },
	"amount":      func(in model.Income) fieldValue { return numberField(in.Amount) },
	"date":        func(in model.Income) fieldValue { return dateField(in.Date) },
	"description": func(in model.Income) fieldValue { return textField(in.Description) },
}

var expenseFields = map[string]func(model.Expense) fieldValue{
	"id":          func(e model.Expense) fieldValue { return idField(e.ID) },
	"category":    func(e model.Expense) fieldValue { return textField(e.Category) },
	"amount":      func(e model.Expense) fieldValue { return numberField(e.Amount) },
	"date":        func(e model.Expense) fieldValue { return dateField(e.Date) },
	"description": func(e model.Expense) fieldValue { return textField(e.Description) },
}

var budgetFields = map[string]func(model.Budget) fieldValue{
	"id":       func(b model.Budget) fieldValue { return idField(b.ID) },
	"category": func(b model.Budget) fieldValue { return textField(b.Category) },
	"amount":   func(b model.Budget) fieldValue { return numberField(b.Amount) },
}

func resolveField[T any](fields map[string]func(T) fieldValue, key string) (func(T) fieldValue, error) {
	accessor, ok := fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownField, key)
	}
	return accessor, nil
}

func filterRecords[T any](records []T, fields map[string]func(T) fieldValue, key, value string) ([]T, error) {
	accessor, err := resolveField(fields, key)
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(records))
	for _, r := range records {
		if accessor(r).equals(value) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func searchRecords[T any](records []T, fields map[string]func(T) fieldValue, key, query string) ([]T, error) {
	accessor, err := resolveField(fields, key)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]T, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(accessor(r).String()), needle) {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func sortRecords[T any](records []T, fields map[string]func(T) fieldValue, key string, descending bool) ([]T, error) {
	accessor, err := resolveField(fields, key)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		c := accessor(a).compare(accessor(b))
		if descending {
			return -c
		}
		return c
	})
	return sorted, nil
}

// FilterIncomes keeps incomes whose named field equals value exactly.
func FilterIncomes(incomes []model.Income, key, value string) ([]model.Income, error) {
	return filterRecords(incomes, incomeFields, key, value)
}

// SearchIncomes keeps incomes whose named field contains query,
// case-insensitively.
func SearchIncomes(incomes []model.Income, key, query string) ([]model.Income, error) {
	return searchRecords(incomes, incomeFields, key, query)
}

// SortIncomes returns a stably sorted copy ordered by the named field.
func SortIncomes(incomes []model.Income, key string, descending bool) ([]model.Income, error) {
	return sortRecords(incomes, incomeFields, key, descending)
}

// FilterExpenses keeps expenses whose named field equals value exactly.
func FilterExpenses(expenses []model.Expense, key, value string) ([]model.Expense, error) {
	return filterRecords(expenses, expenseFields, key, value)
}

// SearchExpenses keeps expenses whose named field contains query,
// case-insensitively.
func SearchExpenses(expenses []model.Expense, key, query string) ([]model.Expense, error) {
	return searchRecords(expenses, expenseFields, key, query)
}

// SortExpenses returns a stably sorted copy ordered by the named field.
func SortExpenses(expenses []model.Expense, key string, descending bool) ([]model.Expense, error) {
	return sortRecords(expenses, expenseFields, key, descending)
}

// FilterBudgets keeps budgets whose named field equals value exactly.
func FilterBudgets(budgets []model.Budget, key, value string) ([]model.Budget, error) {
	return filterRecords(budgets, budgetFields, key, value)
}

// SearchBudgets keeps budgets whose named field contains query,
// case-insensitively.
func SearchBudgets(budgets []model.Budget, key, query string) ([]model.Budget, error) {
	return searchRecords(budgets, budgetFields, key, query)
}

// SortBudgets returns a stably sorted copy ordered by the named field.
func SortBudgets(budgets []model.Budget, key string, descending bool) ([]model.Budget, error) {
	return sortRecords(budgets, budgetFields, key, descending)
}
