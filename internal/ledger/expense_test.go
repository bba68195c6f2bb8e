package ledger

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewExpenseValidation(t *testing.T) {
	valid := ExpenseInput{
		Date:         "2024-01-01",
		Description:  "Lunch",
		Amount:       decimal.NewFromInt(100),
		Payer:        "A",
		Participants: []string{"A", "B"},
	}

	tests := []struct {
		name    string
		mutate  func(in *ExpenseInput)
		wantMsg string
	}{
		{
			name:   "valid input",
			mutate: func(in *ExpenseInput) {},
		},
		{
			name:    "unparseable date",
			mutate:  func(in *ExpenseInput) { in.Date = "01/01/2024" },
			wantMsg: "YYYY-MM-DD",
		},
		{
			name:    "empty description",
			mutate:  func(in *ExpenseInput) { in.Description = "   " },
			wantMsg: "description is required",
		},
		{
			name:    "zero amount",
			mutate:  func(in *ExpenseInput) { in.Amount = decimal.Zero },
			wantMsg: "amount must be positive",
		},
		{
			name:    "negative amount",
			mutate:  func(in *ExpenseInput) { in.Amount = decimal.NewFromInt(-5) },
			wantMsg: "amount must be positive",
		},
		{
			name:    "missing payer",
			mutate:  func(in *ExpenseInput) { in.Payer = "" },
			wantMsg: "payer must be selected",
		},
		{
			name:    "no participants",
			mutate:  func(in *ExpenseInput) { in.Participants = nil },
			wantMsg: "at least one participant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.Participants = append([]string(nil), valid.Participants...)
			tt.mutate(&in)

			e, err := NewExpense(in)
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("NewExpense() error = %v, want nil", err)
				}
				if e.ID == "" {
					t.Error("expected a generated expense ID")
				}
				return
			}
			if err == nil {
				t.Fatalf("NewExpense() = %+v, want error containing %q", e, tt.wantMsg)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestNewExpenseChecksDateBeforeOtherFields(t *testing.T) {
	// Everything is invalid; the date rule must win.
	_, err := NewExpense(ExpenseInput{Date: "not-a-date"})
	if err == nil || !strings.Contains(err.Error(), "YYYY-MM-DD") {
		t.Errorf("error = %v, want the date violation first", err)
	}

	// Date valid, everything else invalid; description must win over amount.
	_, err = NewExpense(ExpenseInput{Date: "2024-01-01"})
	if err == nil || !strings.Contains(err.Error(), "description") {
		t.Errorf("error = %v, want the description violation next", err)
	}
}

func TestNewExpenseTrimsDescription(t *testing.T) {
	e, err := NewExpense(ExpenseInput{
		Date:         "2024-01-01",
		Description:  "  Lunch  ",
		Amount:       decimal.NewFromInt(10),
		Payer:        "A",
		Participants: []string{"A"},
	})
	if err != nil {
		t.Fatalf("NewExpense() error = %v", err)
	}
	if e.Description != "Lunch" {
		t.Errorf("Description = %q, want %q", e.Description, "Lunch")
	}
}

func TestNewExpenseCopiesParticipants(t *testing.T) {
	participants := []string{"A", "B"}
	e, err := NewExpense(ExpenseInput{
		Date:         "2024-01-01",
		Description:  "Lunch",
		Amount:       decimal.NewFromInt(10),
		Payer:        "A",
		Participants: participants,
	})
	if err != nil {
		t.Fatalf("NewExpense() error = %v", err)
	}
	participants[0] = "Z"
	if e.Participants[0] != "A" {
		t.Error("expense shares the caller's participants slice")
	}
}
