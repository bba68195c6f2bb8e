// Package ledger implements the shared-expense engine: the friend and
// expense store, the running balance totals, the debt settlement solver,
// and the expense filter.
//
// A Ledger is a single shared mutable object owned by the invoking process.
// Every operation runs to completion before returning, so callers never
// observe partial state. The engine takes no locks; embed it behind your
// own mutual exclusion if it ever serves concurrent callers.
package ledger

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance summarizes one friend's position.
type Balance struct {
	Name      string
	TotalPaid decimal.Decimal // sum of amounts of expenses they paid
	TotalOwed decimal.Decimal // sum of their shares across expenses
	Net       decimal.Decimal // TotalPaid - TotalOwed
}

// runningTotals are maintained incrementally as expenses are recorded,
// edited, and deleted, and rebuilt from scratch whenever incremental
// reversal would be unsafe (friend removal, loading a snapshot).
type runningTotals struct {
	paid decimal.Decimal
	owed decimal.Decimal
}

// Ledger holds the canonical list of friends and expenses and keeps each
// friend's totals consistent with the expense list.
type Ledger struct {
	names    []string // insertion order is display order
	totals   map[string]*runningTotals
	expenses []Expense
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{totals: make(map[string]*runningTotals)}
}

// AddParticipant registers a new friend. The name is trimmed; an empty or
// already-present name (case-sensitive exact match) is a ValidationError.
func (l *Ledger) AddParticipant(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Msg: "friend name is required"}
	}
	if _, exists := l.totals[name]; exists {
		return validationErrorf("friend %q already exists", name)
	}
	l.names = append(l.names, name)
	l.totals[name] = &runningTotals{}
	return nil
}

// RemoveParticipants deletes the named friends and cascades: every expense
// they paid or shared in is deleted too, and the remaining totals are
// rebuilt from the surviving expenses. Irreversible; confirmation is the
// caller's concern.
func (l *Ledger) RemoveParticipants(names []string) error {
	if len(names) == 0 {
		return &ValidationError{Msg: "select at least one friend to remove"}
	}
	doomed := make(map[string]bool, len(names))
	for _, name := range names {
		doomed[name] = true
	}

	kept := l.expenses[:0]
	for _, e := range l.expenses {
		if !e.involves(doomed) {
			kept = append(kept, e)
		}
	}
	l.expenses = kept

	survivors := l.names[:0]
	for _, name := range l.names {
		if doomed[name] {
			delete(l.totals, name)
		} else {
			survivors = append(survivors, name)
		}
	}
	l.names = survivors

	// Incremental subtraction is unsafe once referenced friends are gone.
	l.recompute()
	return nil
}

// AddExpense validates and records a new expense, applying its effect to
// the running totals. The payer and every participant must already be
// registered friends.
func (l *Ledger) AddExpense(in ExpenseInput) (Expense, error) {
	e, err := NewExpense(in)
	if err != nil {
		return Expense{}, err
	}
	if err := l.checkReferences(e); err != nil {
		return Expense{}, err
	}
	l.expenses = append(l.expenses, e)
	l.apply(e)
	return e.clone(), nil
}

// UpdateExpense replaces the expense with the given ID. The new fields are
// validated first; only then is the old expense's effect reversed and the
// new one applied, as one unit.
func (l *Ledger) UpdateExpense(id string, in ExpenseInput) (Expense, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Expense{}, integrityErrorf("no expense with id %q", id)
	}
	e, err := NewExpense(in)
	if err != nil {
		return Expense{}, err
	}
	if err := l.checkReferences(e); err != nil {
		return Expense{}, err
	}
	e.ID = id

	l.reverse(l.expenses[i])
	l.expenses[i] = e
	l.apply(e)
	return e.clone(), nil
}

// DeleteExpenses removes the expenses with the given IDs, reversing each
// one's effect on the totals. If any ID is unknown the whole operation is
// rejected and nothing is deleted.
func (l *Ledger) DeleteExpenses(ids []string) error {
	indices := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		i := l.indexOf(id)
		if i < 0 {
			return integrityErrorf("no expense with id %q", id)
		}
		if !seen[i] {
			seen[i] = true
			indices = append(indices, i)
		}
	}

	// Back to front so earlier removals do not shift later indices.
	sort.Ints(indices)
	for i := len(indices) - 1; i >= 0; i-- {
		idx := indices[i]
		l.reverse(l.expenses[idx])
		l.expenses = append(l.expenses[:idx], l.expenses[idx+1:]...)
	}
	return nil
}

// ClearAll deletes every expense and zeroes every friend's totals. The
// friend list is kept.
func (l *Ledger) ClearAll() {
	l.expenses = nil
	for _, t := range l.totals {
		*t = runningTotals{}
	}
}

// Replace installs a loaded snapshot: friends first, then expenses, then a
// full recomputation of the totals. An expense referencing an unknown
// friend is an IntegrityError and nothing is installed.
func (l *Ledger) Replace(participants []string, expenses []Expense) error {
	names := make([]string, 0, len(participants))
	totals := make(map[string]*runningTotals, len(participants))
	for _, name := range participants {
		name = strings.TrimSpace(name)
		if name == "" {
			return &IntegrityError{Msg: "loaded friend list contains an empty name"}
		}
		if _, dup := totals[name]; dup {
			return integrityErrorf("loaded friend list contains %q twice", name)
		}
		names = append(names, name)
		totals[name] = &runningTotals{}
	}

	installed := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if len(e.Participants) == 0 {
			return integrityErrorf("loaded expense %q has no participants", e.Description)
		}
		if _, known := totals[e.Payer]; !known {
			return integrityErrorf("loaded expense %q references unknown payer %q", e.Description, e.Payer)
		}
		for _, p := range e.Participants {
			if _, known := totals[p]; !known {
				return integrityErrorf("loaded expense %q references unknown participant %q", e.Description, p)
			}
		}
		e = e.clone()
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		installed = append(installed, e)
	}

	l.names = names
	l.totals = totals
	l.expenses = installed
	l.recompute()
	return nil
}

// Participants returns the friend names in display order.
func (l *Ledger) Participants() []string {
	return append([]string(nil), l.names...)
}

// Expenses returns a copy of the expense list in recording order.
func (l *Ledger) Expenses() []Expense {
	out := make([]Expense, 0, len(l.expenses))
	for _, e := range l.expenses {
		out = append(out, e.clone())
	}
	return out
}

// Balance returns the position of one friend.
func (l *Ledger) Balance(name string) (Balance, bool) {
	t, ok := l.totals[name]
	if !ok {
		return Balance{}, false
	}
	return Balance{
		Name:      name,
		TotalPaid: t.paid,
		TotalOwed: t.owed,
		Net:       t.paid.Sub(t.owed),
	}, true
}

// Balances returns every friend's position in display order.
func (l *Ledger) Balances() []Balance {
	out := make([]Balance, 0, len(l.names))
	for _, name := range l.names {
		b, _ := l.Balance(name)
		out = append(out, b)
	}
	return out
}

// Expense returns the expense with the given ID.
func (l *Ledger) Expense(id string) (Expense, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Expense{}, false
	}
	return l.expenses[i].clone(), true
}

func (l *Ledger) indexOf(id string) int {
	for i, e := range l.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) checkReferences(e Expense) error {
	if _, known := l.totals[e.Payer]; !known {
		return integrityErrorf("payer %q is not a known friend", e.Payer)
	}
	for _, p := range e.Participants {
		if _, known := l.totals[p]; !known {
			return integrityErrorf("participant %q is not a known friend", p)
		}
	}
	return nil
}

// apply adds the expense's effect to the running totals. The payer and all
// participants must exist; callers guarantee it.
func (l *Ledger) apply(e Expense) {
	l.totals[e.Payer].paid = l.totals[e.Payer].paid.Add(e.Amount)
	share := e.share()
	for _, p := range e.Participants {
		l.totals[p].owed = l.totals[p].owed.Add(share)
	}
}

// reverse subtracts exactly what apply added, using the share fixed at
// recording time, so an apply/reverse pair leaves no drift.
func (l *Ledger) reverse(e Expense) {
	l.totals[e.Payer].paid = l.totals[e.Payer].paid.Sub(e.Amount)
	share := e.share()
	for _, p := range e.Participants {
		l.totals[p].owed = l.totals[p].owed.Sub(share)
	}
}

// recompute resets every total to zero and re-applies the expense list in
// order.
func (l *Ledger) recompute() {
	for _, t := range l.totals {
		*t = runningTotals{}
	}
	for _, e := range l.expenses {
		l.apply(e)
	}
}
