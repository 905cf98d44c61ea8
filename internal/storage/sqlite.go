package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"pocketbook/internal/common"
	"pocketbook/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the Store contract on a SQLite database. It
// keeps the same load-all/replace-all semantics as the CSV store: each
// save clears a table and reinserts the whole collection inside one
// transaction. Insertion order is preserved through an explicit
// position column.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the database at dbPath and
// bootstraps the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("%w: failed to create database directory: %v", common.ErrStoreUnavailable, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", common.ErrStoreUnavailable, err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %v", common.ErrStoreUnavailable, err)
	}

	store := &SQLiteStore{db: db, dbPath: dbPath}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS incomes (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		id INTEGER NOT NULL,
		source TEXT NOT NULL,
		amount REAL NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS expenses (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		id INTEGER NOT NULL,
		category TEXT NOT NULL,
		amount REAL NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS budgets (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		id INTEGER NOT NULL,
		category TEXT NOT NULL,
		amount REAL NOT NULL
	);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadIncomes returns the income collection in insertion order.
func (s *SQLiteStore) LoadIncomes(ctx context.Context) ([]model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, amount, date, description FROM incomes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	var incomes []model.Income
	for rows.Next() {
		var in model.Income
		var date string
		if err := rows.Scan(&in.ID, &in.Source, &in.Amount, &date, &in.Description); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		if in.Date, err = model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("bad income date %q: %w", date, err)
		}
		incomes = append(incomes, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incomes: %w", err)
	}
	return incomes, nil
}

// SaveIncomes replaces the income collection wholesale.
func (s *SQLiteStore) SaveIncomes(ctx context.Context, incomes []model.Income) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	return s.replaceAll(ctx, "incomes",
		`INSERT INTO incomes (id, source, amount, date, description) VALUES (?, ?, ?, ?, ?)`,
		len(incomes), func(i int) []any {
			in := incomes[i]
			return []any{in.ID, in.Source, in.Amount, model.FormatDate(in.Date), in.Description}
		})
}

// LoadExpenses returns the expense collection in insertion order.
func (s *SQLiteStore) LoadExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, amount, date, description FROM expenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var e model.Expense
		var date string
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &date, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if e.Date, err = model.ParseDate(date); err != nil {
			return nil, fmt.Errorf("bad expense date %q: %w", date, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

// SaveExpenses replaces the expense collection wholesale.
func (s *SQLiteStore) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	return s.replaceAll(ctx, "expenses",
		`INSERT INTO expenses (id, category, amount, date, description) VALUES (?, ?, ?, ?, ?)`,
		len(expenses), func(i int) []any {
			e := expenses[i]
			return []any{e.ID, e.Category, e.Amount, model.FormatDate(e.Date), e.Description}
		})
}

// LoadBudgets returns the budget collection in insertion order.
func (s *SQLiteStore) LoadBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, amount FROM budgets ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}
	return budgets, nil
}

// SaveBudgets replaces the budget collection wholesale.
func (s *SQLiteStore) SaveBudgets(ctx context.Context, budgets []model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	return s.replaceAll(ctx, "budgets",
		`INSERT INTO budgets (id, category, amount) VALUES (?, ?, ?)`,
		len(budgets), func(i int) []any {
			b := budgets[i]
			return []any{b.ID, b.Category, b.Amount}
		})
}

// replaceAll clears a table and reinserts n rows inside one
// transaction, so a failed save never leaves a partial collection.
func (s *SQLiteStore) replaceAll(ctx context.Context, table, insert string, n int, args func(int) []any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}
