package cli

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/ledger"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"50", "INR", "₹50.00"},
		{"33.333333", "INR", "₹33.33"},
		{"1234.5", "EUR", "€1,234.50"},
	}
	for _, tt := range tests {
		got := formatAmount(decimal.RequireFromString(tt.amount), tt.currency)
		if got != tt.want {
			t.Errorf("formatAmount(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestResolveExpenseID(t *testing.T) {
	book := ledger.New()
	if err := book.AddParticipant("A"); err != nil {
		t.Fatal(err)
	}
	e, err := book.AddExpense(ledger.ExpenseInput{
		Date: "2024-01-01", Description: "Lunch",
		Amount: decimal.NewFromInt(10), Payer: "A", Participants: []string{"A"},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got, err := resolveExpenseID(book, e.ID); err != nil || got != e.ID {
		t.Errorf("full id resolve = %q, %v", got, err)
	}
	if got, err := resolveExpenseID(book, e.ID[:8]); err != nil || got != e.ID {
		t.Errorf("prefix resolve = %q, %v", got, err)
	}
	if _, err := resolveExpenseID(book, "zzzz"); err == nil {
		t.Error("expected error for unknown id")
	}
}
