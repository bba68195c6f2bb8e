package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used for expense dates.
const DateLayout = "2006-01-02"

// Expense is a dated cost paid by one friend and shared equally by a group
// of friends. The split is fixed when the expense is recorded: editing the
// friend list later never changes an existing expense's shares.
type Expense struct {
	// ID is the stable identifier assigned when the expense is recorded
	// (UUID format). Rows in a display list come and go with filtering;
	// the ID does not.
	ID string

	// Date is the calendar date of the expense in YYYY-MM-DD format.
	Date string

	// Description is the human-readable reason for the expense.
	Description string

	// Amount is the total paid, always positive.
	Amount decimal.Decimal

	// Payer is the name of the friend who paid the full amount.
	Payer string

	// Participants are the friends sharing the cost, in selection order.
	Participants []string
}

// ExpenseInput carries the user-supplied fields for recording or editing an
// expense.
type ExpenseInput struct {
	Date         string
	Description  string
	Amount       decimal.Decimal
	Payer        string
	Participants []string
}

// NewExpense validates the input and builds an expense with a fresh ID.
// Rules are checked in a fixed order (date, description, amount, payer,
// participants) and the first violation is returned as a ValidationError.
func NewExpense(in ExpenseInput) (Expense, error) {
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return Expense{}, validationErrorf("date %q must be in YYYY-MM-DD format", in.Date)
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return Expense{}, &ValidationError{Msg: "description is required"}
	}
	if !in.Amount.IsPositive() {
		return Expense{}, &ValidationError{Msg: "amount must be positive"}
	}
	if in.Payer == "" {
		return Expense{}, &ValidationError{Msg: "a payer must be selected"}
	}
	if len(in.Participants) == 0 {
		return Expense{}, &ValidationError{Msg: "at least one participant must be selected"}
	}

	return Expense{
		ID:           uuid.New().String(),
		Date:         in.Date,
		Description:  description,
		Amount:       in.Amount,
		Payer:        in.Payer,
		Participants: append([]string(nil), in.Participants...),
	}, nil
}

// share is the equal split of the amount among the recorded participants.
func (e Expense) share() decimal.Decimal {
	return e.Amount.Div(decimal.NewFromInt(int64(len(e.Participants))))
}

// involves reports whether any of the given names is the payer or one of
// the participants of the expense.
func (e Expense) involves(names map[string]bool) bool {
	if names[e.Payer] {
		return true
	}
	for _, p := range e.Participants {
		if names[p] {
			return true
		}
	}
	return false
}

// clone returns a copy of the expense with its own participants slice.
func (e Expense) clone() Expense {
	e.Participants = append([]string(nil), e.Participants...)
	return e
}
