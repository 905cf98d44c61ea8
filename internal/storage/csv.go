// Package storage provides the data persistence layer for pocketbook.
package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"pocketbook/internal/common"
	"pocketbook/internal/model"
)

// Per-entity file names inside the data directory.
const (
	incomesFile  = "incomes.csv"
	expensesFile = "expenses.csv"
	budgetsFile  = "budgets.csv"
)

// Header rows written on every save and skipped on every load.
var (
	incomeHeader  = []string{"id", "source", "amount", "date", "description"}
	expenseHeader = []string{"id", "category", "amount", "date", "description"}
	budgetHeader  = []string{"id", "category", "amount"}
)

// CSVStore persists each collection to one CSV file under a data
// directory. Every save fully rewrites the file, header included; a
// missing file loads as an empty collection. The files are not locked,
// so the store assumes a single process and a single session.
type CSVStore struct {
	dir string
}

// NewCSVStore creates a CSV store rooted at dir, creating the
// directory if needed.
func NewCSVStore(dir string) (*CSVStore, error) {
	if err := validateString(dir, "dir"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("%w: failed to create data directory: %v", common.ErrStoreUnavailable, err)
	}
	return &CSVStore{dir: dir}, nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *CSVStore) Close() error { return nil }

// LoadIncomes reads the income collection in file order.
func (s *CSVStore) LoadIncomes(ctx context.Context) ([]model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.loadRows(incomesFile)
	if err != nil {
		return nil, err
	}

	incomes := make([]model.Income, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("%s row %d: expected 5 columns, got %d", incomesFile, i+2, len(row))
		}
		id, amount, date, err := parseCommonColumns(row[0], row[2], row[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", incomesFile, i+2, err)
		}
		incomes = append(incomes, model.Income{
			ID:          id,
			Source:      row[1],
			Amount:      amount,
			Date:        date,
			Description: row[4],
		})
	}
	return incomes, nil
}

// SaveIncomes rewrites the income file with a fresh header.
func (s *CSVStore) SaveIncomes(ctx context.Context, incomes []model.Income) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	rows := make([][]string, 0, len(incomes))
	for _, in := range incomes {
		rows = append(rows, []string{
			strconv.Itoa(in.ID),
			in.Source,
			formatAmount(in.Amount),
			model.FormatDate(in.Date),
			in.Description,
		})
	}
	return s.saveRows(incomesFile, incomeHeader, rows)
}

// LoadExpenses reads the expense collection in file order.
func (s *CSVStore) LoadExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.loadRows(expensesFile)
	if err != nil {
		return nil, err
	}

	expenses := make([]model.Expense, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("%s row %d: expected 5 columns, got %d", expensesFile, i+2, len(row))
		}
		id, amount, date, err := parseCommonColumns(row[0], row[2], row[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", expensesFile, i+2, err)
		}
		expenses = append(expenses, model.Expense{
			ID:          id,
			Category:    row[1],
			Amount:      amount,
			Date:        date,
			Description: row[4],
		})
	}
	return expenses, nil
}

// SaveExpenses rewrites the expense file with a fresh header.
func (s *CSVStore) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Category,
			formatAmount(e.Amount),
			model.FormatDate(e.Date),
			e.Description,
		})
	}
	return s.saveRows(expensesFile, expenseHeader, rows)
}

// LoadBudgets reads the budget collection in file order.
func (s *CSVStore) LoadBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.loadRows(budgetsFile)
	if err != nil {
		return nil, err
	}

	budgets := make([]model.Budget, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%s row %d: expected 3 columns, got %d", budgetsFile, i+2, len(row))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad id: %w", budgetsFile, i+2, err)
		}
		amount, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad amount: %w", budgetsFile, i+2, err)
		}
		budgets = append(budgets, model.Budget{
			ID:       id,
			Category: row[1],
			Amount:   amount,
		})
	}
	return budgets, nil
}

// SaveBudgets rewrites the budget file with a fresh header.
func (s *CSVStore) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, []string{
			strconv.Itoa(b.ID),
			b.Category,
			formatAmount(b.Amount),
		})
	}
	return s.saveRows(budgetsFile, budgetHeader, rows)
}

// loadRows reads every data row of a file, skipping the header and any
// blank rows. A missing file is not an error; it logs a warning and
// yields no rows.
func (s *CSVStore) loadRows(name string) ([][]string, error) {
	path := filepath.Join(s.dir, name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("data file not found, starting with empty collection", "file", path)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to open %s: %v", common.ErrStoreUnavailable, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	rows := make([][]string, 0, len(records)-1)
	for _, row := range records[1:] { // skip header
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// saveRows rewrites a file through a temp file and rename so a failed
// write cannot leave a truncated collection behind.
func (s *CSVStore) saveRows(name string, header []string, rows [][]string) error {
	path := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	writeErr := writer.Write(header)
	for _, row := range rows {
		if writeErr != nil {
			break
		}
		writeErr = writer.Write(row)
	}
	if writeErr == nil {
		writer.Flush()
		writeErr = writer.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, writeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// parseCommonColumns parses the id, amount, and date columns shared by
// income and expense rows.
func parseCommonColumns(idCol, amountCol, dateCol string) (int, float64, time.Time, error) {
	id, err := strconv.Atoi(idCol)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("bad id: %w", err)
	}
	amount, err := strconv.ParseFloat(amountCol, 64)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("bad amount: %w", err)
	}
	date, err := model.ParseDate(dateCol)
	if err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("bad date: %w", err)
	}
	return id, amount, date, nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
