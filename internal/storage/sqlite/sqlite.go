// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface using the pure Go driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store on a SQLite database. Saves follow the
// same full-replacement contract as the JSON files: each save rewrites the
// whole table inside one transaction.
type Store struct {
	db *sql.DB
}

// New creates a Store at the given database path. It creates the parent
// directories and runs migrations automatically.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &storage.PersistenceError{Op: "create database directory", Err: err}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &storage.PersistenceError{Op: "open database", Err: err}
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, &storage.PersistenceError{Op: "enable foreign keys", Err: err}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, &storage.PersistenceError{Op: "run migrations", Err: err}
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadParticipants reads the friend list in display order.
func (s *Store) LoadParticipants(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM friends ORDER BY position")
	if err != nil {
		return nil, &storage.PersistenceError{Op: "load friends", Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &storage.PersistenceError{Op: "load friends", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &storage.PersistenceError{Op: "load friends", Err: err}
	}
	return names, nil
}

// SaveParticipants replaces the friend table.
func (s *Store) SaveParticipants(ctx context.Context, names []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &storage.PersistenceError{Op: "save friends", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM friends"); err != nil {
		return &storage.PersistenceError{Op: "save friends", Err: err}
	}
	for i, name := range names {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO friends (name, position) VALUES (?, ?)", name, i,
		); err != nil {
			return &storage.PersistenceError{Op: "save friends", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &storage.PersistenceError{Op: "save friends", Err: err}
	}
	return nil
}

// LoadExpenses reads the expense list in recording order.
func (s *Store) LoadExpenses(ctx context.Context) ([]ledger.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, date, description, amount, payer FROM expenses ORDER BY position")
	if err != nil {
		return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
	}
	defer rows.Close()

	var expenses []ledger.Expense
	for rows.Next() {
		var e ledger.Expense
		var amount string
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &amount, &e.Payer); err != nil {
			return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
		}
		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, &storage.PersistenceError{
				Op:  "load expenses",
				Err: fmt.Errorf("expense %s has malformed amount %q: %w", e.ID, amount, err),
			}
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
	}

	for i := range expenses {
		participants, err := s.loadExpenseParticipants(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
		expenses[i].Participants = participants
	}
	return expenses, nil
}

func (s *Store) loadExpenseParticipants(ctx context.Context, expenseID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM expense_participants WHERE expense_id = ? ORDER BY position", expenseID)
	if err != nil {
		return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
	}
	return names, nil
}

// SaveExpenses replaces the expense tables. Expenses without an ID get one
// assigned, so data imported from the JSON files gains stable identifiers.
func (s *Store) SaveExpenses(ctx context.Context, expenses []ledger.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &storage.PersistenceError{Op: "save expenses", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_participants"); err != nil {
		return &storage.PersistenceError{Op: "save expenses", Err: err}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return &storage.PersistenceError{Op: "save expenses", Err: err}
	}

	for i, e := range expenses {
		id := e.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO expenses (id, date, description, amount, payer, position) VALUES (?, ?, ?, ?, ?, ?)",
			id, e.Date, e.Description, e.Amount.String(), e.Payer, i,
		); err != nil {
			return &storage.PersistenceError{Op: "save expenses", Err: err}
		}
		for j, name := range e.Participants {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO expense_participants (expense_id, name, position) VALUES (?, ?, ?)",
				id, name, j,
			); err != nil {
				return &storage.PersistenceError{Op: "save expenses", Err: err}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return &storage.PersistenceError{Op: "save expenses", Err: err}
	}
	return nil
}
