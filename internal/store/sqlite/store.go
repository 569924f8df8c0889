// Package sqlite stores expenses in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"todo/internal/errs"
	"todo/internal/expense"
	"todo/internal/store/sqlite/migrations"
)

// Store provides SQLite-backed expense persistence.
type Store struct {
	db *sql.DB
}

// Open opens the database at path, creating it and its schema when needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add inserts e and returns its assigned id.
func (s *Store) Add(ctx context.Context, e expense.Expense) (int64, error) {
	if err := e.Normalize(); err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, `
INSERT INTO expenses (description, amount, category, sub_category, date)
VALUES (?, ?, ?, ?, ?)
`,
		e.Description,
		e.Amount,
		e.Category,
		e.SubCategory,
		e.Date.Format(expense.DateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert expense id: %w", err)
	}
	return id, nil
}

// List returns expenses matching f ordered by date, then id.
func (s *Store) List(ctx context.Context, f expense.Filter) ([]expense.Expense, error) {
	var (
		where []string
		args  []any
	)
	if c := strings.TrimSpace(f.Category); c != "" {
		where = append(where, "category = ? COLLATE NOCASE")
		args = append(args, c)
	}
	if !f.From.IsZero() {
		where = append(where, "date >= ?")
		args = append(args, f.From.Format(expense.DateLayout))
	}
	if !f.To.IsZero() {
		where = append(where, "date <= ?")
		args = append(args, f.To.Format(expense.DateLayout))
	}

	query := "SELECT id, description, amount, category, sub_category, date FROM expenses"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.Expense
	for rows.Next() {
		var (
			e    expense.Expense
			date string
		)
		if err := rows.Scan(&e.ID, &e.Description, &e.Amount, &e.Category, &e.SubCategory, &date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Date, err = expense.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return out, nil
}

// Delete removes the expense with the given id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if n == 0 {
		return &errs.NotFoundError{Kind: "expense", ID: id}
	}
	return nil
}
