package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/ledger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEmptyDatabase(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	friends, err := store.LoadParticipants(ctx)
	if err != nil {
		t.Fatalf("LoadParticipants() error = %v", err)
	}
	if len(friends) != 0 {
		t.Errorf("friends = %v, want none", friends)
	}
	expenses, err := store.LoadExpenses(ctx)
	if err != nil {
		t.Fatalf("LoadExpenses() error = %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("expenses = %v, want none", expenses)
	}
}

func TestSaveIsFullReplacement(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveParticipants(ctx, []string{"A", "B", "C"}); err != nil {
		t.Fatalf("SaveParticipants() error = %v", err)
	}
	if err := store.SaveParticipants(ctx, []string{"C", "A"}); err != nil {
		t.Fatalf("second SaveParticipants() error = %v", err)
	}

	friends, err := store.LoadParticipants(ctx)
	if err != nil {
		t.Fatalf("LoadParticipants() error = %v", err)
	}
	want := []string{"C", "A"}
	if len(friends) != len(want) {
		t.Fatalf("friends = %v, want %v", friends, want)
	}
	for i := range want {
		if friends[i] != want[i] {
			t.Errorf("friends[%d] = %q, want %q (insertion order)", i, friends[i], want[i])
		}
	}
}

func TestExpensesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := []ledger.Expense{
		{
			ID:           "e1",
			Date:         "2024-01-01",
			Description:  "Dinner",
			Amount:       decimal.RequireFromString("33.33"),
			Payer:        "A",
			Participants: []string{"C", "A", "B"}, // selection order matters
		},
		{
			// No ID: the store must assign one.
			Date:         "2024-01-02",
			Description:  "Taxi",
			Amount:       decimal.RequireFromString("12.5"),
			Payer:        "B",
			Participants: []string{"B"},
		},
	}
	if err := store.SaveExpenses(ctx, saved); err != nil {
		t.Fatalf("SaveExpenses() error = %v", err)
	}

	loaded, err := store.LoadExpenses(ctx)
	if err != nil {
		t.Fatalf("LoadExpenses() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d expenses, want 2", len(loaded))
	}

	first := loaded[0]
	if first.ID != "e1" {
		t.Errorf("ID = %q, want e1", first.ID)
	}
	// Decimal amounts survive exactly via TEXT storage.
	if !first.Amount.Equal(decimal.RequireFromString("33.33")) {
		t.Errorf("amount = %s, want 33.33 exactly", first.Amount)
	}
	wantParticipants := []string{"C", "A", "B"}
	if len(first.Participants) != len(wantParticipants) {
		t.Fatalf("participants = %v, want %v", first.Participants, wantParticipants)
	}
	for i := range wantParticipants {
		if first.Participants[i] != wantParticipants[i] {
			t.Errorf("participants[%d] = %q, want %q (selection order)", i, first.Participants[i], wantParticipants[i])
		}
	}

	if loaded[1].ID == "" {
		t.Error("expense saved without an ID did not get one assigned")
	}
	if loaded[1].Description != "Taxi" {
		t.Errorf("second expense = %q, want Taxi (recording order)", loaded[1].Description)
	}
}

func TestMalformedAmountSurfacesError(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		"INSERT INTO expenses (id, date, description, amount, payer, position) VALUES ('x', '2024-01-01', 'Bad', 'garbage', 'A', 0)")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.LoadExpenses(ctx); err == nil {
		t.Error("expected an error for a malformed stored amount")
	}
}
