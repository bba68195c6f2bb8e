package ledger

import (
	"testing"
)

func filterFixture(t *testing.T) *Ledger {
	t.Helper()
	l := New()
	mustAddFriends(t, l, "Alice", "Bob", "Carol")
	mustAddExpense(t, l, "2024-01-05", "Lunch", 30, "Alice", "Alice", "Bob")
	mustAddExpense(t, l, "2024-02-10", "Groceries", 45, "Bob", "Bob", "Carol")
	mustAddExpense(t, l, "2024-02-14", "Dinner out", 60, "Carol", "Alice", "Bob", "Carol")
	return l
}

func TestParseCriterion(t *testing.T) {
	for _, s := range []string{"all", "Date", " DESCRIPTION ", "payer", "Participant"} {
		if _, err := ParseCriterion(s); err != nil {
			t.Errorf("ParseCriterion(%q) error = %v", s, err)
		}
	}
	if _, err := ParseCriterion("amount"); err == nil {
		t.Error("expected error for unknown criterion")
	}
}

func TestFilter(t *testing.T) {
	l := filterFixture(t)

	tests := []struct {
		name      string
		criterion Criterion
		value     string
		wantDescs []string
	}{
		{"all returns everything", CriterionAll, "ignored", []string{"Lunch", "Groceries", "Dinner out"}},
		{"empty value returns everything", CriterionPayer, "", []string{"Lunch", "Groceries", "Dinner out"}},
		{"by date substring", CriterionDate, "2024-02", []string{"Groceries", "Dinner out"}},
		{"by description case-insensitive", CriterionDescription, "lun", []string{"Lunch"}},
		{"by payer", CriterionPayer, "bob", []string{"Groceries"}},
		{"by participant", CriterionParticipant, "carol", []string{"Groceries", "Dinner out"}},
		{"participant matching no one", CriterionParticipant, "zed", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Filter(tt.criterion, tt.value)
			if len(got) != len(tt.wantDescs) {
				t.Fatalf("Filter() returned %d expenses, want %d", len(got), len(tt.wantDescs))
			}
			for i, want := range tt.wantDescs {
				if got[i].Description != want {
					t.Errorf("Filter()[%d] = %q, want %q", i, got[i].Description, want)
				}
			}
		})
	}

	// Filtering never mutates the underlying list.
	if len(l.Expenses()) != 3 {
		t.Error("Filter mutated the expense list")
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	l := filterFixture(t)
	once := l.Filter(CriterionAll, "")
	twice := l.Filter(CriterionAll, "")
	if len(once) != len(twice) {
		t.Fatalf("repeated filter lengths differ: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("repeated filter order differs at %d", i)
		}
	}
}

func TestFilterReturnsCopies(t *testing.T) {
	l := filterFixture(t)
	got := l.Filter(CriterionAll, "")
	got[0].Participants[0] = "Mallory"
	if l.Expenses()[0].Participants[0] == "Mallory" {
		t.Error("filter result aliases the ledger's participant slices")
	}
}
