package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/ledger"
)

// formatAmount renders a decimal amount in the display currency, e.g.
// "₹50.00" for INR.
func formatAmount(d decimal.Decimal, code string) string {
	cur := money.New(0, code).Currency()
	units := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(units, code).Display()
}

// printExpenses renders expenses as a table, one row per expense.
func printExpenses(expenses []ledger.Expense, currency string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDate\tDescription\tAmount\tPayer\tParticipants")
	for _, e := range expenses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(e.ID),
			e.Date,
			e.Description,
			formatAmount(e.Amount, currency),
			e.Payer,
			strings.Join(e.Participants, ", "),
		)
	}
	w.Flush()
}

// printBalances renders the totals table.
func printBalances(balances []ledger.Balance, currency string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Friend\tTotal Paid\tTotal Owed\tBalance")
	for _, b := range balances {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			b.Name,
			formatAmount(b.TotalPaid, currency),
			formatAmount(b.TotalOwed, currency),
			formatAmount(b.Net, currency),
		)
	}
	w.Flush()
}

// printPlan renders payment instructions, one per transfer.
func printPlan(plan ledger.Plan, currency string) {
	if plan.Settled() {
		fmt.Println("No payments needed - all balances are settled")
		return
	}
	for _, t := range plan.Transfers {
		fmt.Printf("%s should pay %s to %s\n", t.From, formatAmount(t.Amount, currency), t.To)
	}
}

// shortID abbreviates a UUID for display. Commands accept either form.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// resolveExpenseID expands a possibly abbreviated ID to a full one. An
// ambiguous prefix is an error.
func resolveExpenseID(book *ledger.Ledger, id string) (string, error) {
	if _, ok := book.Expense(id); ok {
		return id, nil
	}
	var match string
	for _, e := range book.Expenses() {
		if strings.HasPrefix(e.ID, id) {
			if match != "" {
				return "", fmt.Errorf("expense id %q is ambiguous", id)
			}
			match = e.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no expense with id %q", id)
	}
	return match, nil
}
