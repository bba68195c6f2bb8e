// Package storage defines the persistence gateway for ledgers.
package storage

import (
	"context"
	"fmt"

	"github.com/splitledger/splitledger/internal/ledger"
)

// Store is the durable backend for friends and expenses. Every save is a
// complete replacement of what is on disk; there is no partial merge.
// This abstraction allows swapping backends (JSON files, SQLite) without
// changing the callers.
//
// Friends must be loaded before expenses are used to rebuild totals; the
// ledger's Replace operation enforces the ordering and the referential
// integrity of what was read.
type Store interface {
	// LoadParticipants reads the friend list in display order.
	// A backend with no data yet returns an empty list, not an error.
	LoadParticipants(ctx context.Context) ([]string, error)

	// SaveParticipants replaces the stored friend list.
	SaveParticipants(ctx context.Context, names []string) error

	// LoadExpenses reads the expense list in recording order.
	LoadExpenses(ctx context.Context) ([]ledger.Expense, error)

	// SaveExpenses replaces the stored expense list.
	SaveExpenses(ctx context.Context, expenses []ledger.Expense) error

	// Close releases any resources held by the store.
	Close() error
}

// PersistenceError reports an I/O failure on load, save, or export. A
// failed save never touches the in-memory ledger; the caller keeps
// operating on its current state.
type PersistenceError struct {
	Op  string // the operation that failed, e.g. "save expenses"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
