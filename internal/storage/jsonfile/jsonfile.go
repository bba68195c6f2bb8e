// Package jsonfile provides a JSON-file implementation of the storage.Store
// interface: a friends.json array of names and an expenses.json array of
// expense objects, each rewritten in full on every save.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

const (
	friendsFile  = "friends.json"
	expensesFile = "expenses.json"
)

// expenseRecord is the wire form of an expense. Amounts travel as JSON
// numbers; there is no schema version field.
type expenseRecord struct {
	Date         string   `json:"date"`
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Payer        string   `json:"payer"`
	Participants []string `json:"participants"`
}

// Store persists a ledger as two JSON files in a directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &storage.PersistenceError{Op: "create data directory", Err: err}
	}
	return &Store{dir: dir}, nil
}

// LoadParticipants reads friends.json. A missing file means no data yet.
func (s *Store) LoadParticipants(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, friendsFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &storage.PersistenceError{Op: "load friends", Err: err}
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, &storage.PersistenceError{Op: "load friends", Err: err}
	}
	return names, nil
}

// SaveParticipants rewrites friends.json.
func (s *Store) SaveParticipants(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	return s.writeJSON(friendsFile, "save friends", names)
}

// LoadExpenses reads expenses.json. A missing file means no data yet.
func (s *Store) LoadExpenses(ctx context.Context) ([]ledger.Expense, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, expensesFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
	}
	var records []expenseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &storage.PersistenceError{Op: "load expenses", Err: err}
	}
	expenses := make([]ledger.Expense, 0, len(records))
	for _, r := range records {
		expenses = append(expenses, ledger.Expense{
			Date:         r.Date,
			Description:  r.Description,
			Amount:       decimal.NewFromFloat(r.Amount),
			Payer:        r.Payer,
			Participants: r.Participants,
		})
	}
	return expenses, nil
}

// SaveExpenses rewrites expenses.json.
func (s *Store) SaveExpenses(ctx context.Context, expenses []ledger.Expense) error {
	records := make([]expenseRecord, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, expenseRecord{
			Date:         e.Date,
			Description:  e.Description,
			Amount:       e.Amount.InexactFloat64(),
			Payer:        e.Payer,
			Participants: e.Participants,
		})
	}
	return s.writeJSON(expensesFile, "save expenses", records)
}

// Close is a no-op; file handles are not held between calls.
func (s *Store) Close() error { return nil }

// writeJSON marshals v and replaces the named file atomically, so a failed
// save never leaves a truncated file behind.
func (s *Store) writeJSON(name, op string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return &storage.PersistenceError{Op: op, Err: err}
	}
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return &storage.PersistenceError{Op: op, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &storage.PersistenceError{Op: op, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &storage.PersistenceError{Op: op, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &storage.PersistenceError{Op: op, Err: fmt.Errorf("replace %s: %w", name, err)}
	}
	return nil
}
