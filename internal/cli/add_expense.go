package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/ledger"
)

// expenseFlags are the fields shared by the add and edit commands.
type expenseFlags struct {
	date   string
	desc   string
	amount string
	payer  string
	with   string
}

func (e *expenseFlags) register(f *flag.FlagSet) {
	f.StringVar(&e.date, "date", time.Now().Format(ledger.DateLayout), "expense date (YYYY-MM-DD)")
	f.StringVar(&e.desc, "desc", "", "what the expense was for")
	f.StringVar(&e.amount, "amount", "", "total amount paid")
	f.StringVar(&e.payer, "payer", "", "friend who paid")
	f.StringVar(&e.with, "with", "", "comma-separated friends sharing the cost")
}

// input converts the flags to an engine input. The amount string is parsed
// here; everything else is validated by the engine in its fixed order.
func (e *expenseFlags) input() (ledger.ExpenseInput, error) {
	amount := decimal.Zero
	if e.amount != "" {
		var err error
		amount, err = decimal.NewFromString(e.amount)
		if err != nil {
			return ledger.ExpenseInput{}, fmt.Errorf("amount %q is not a number", e.amount)
		}
	}
	var participants []string
	for _, name := range strings.Split(e.with, ",") {
		if name = strings.TrimSpace(name); name != "" {
			participants = append(participants, name)
		}
	}
	return ledger.ExpenseInput{
		Date:         e.date,
		Description:  e.desc,
		Amount:       amount,
		Payer:        e.payer,
		Participants: participants,
	}, nil
}

type addExpenseCmd struct {
	expenseFlags
}

func (*addExpenseCmd) Name() string     { return "add" }
func (*addExpenseCmd) Synopsis() string { return "record a shared expense" }
func (*addExpenseCmd) Usage() string {
	return `splitledger add -desc <text> -amount <n> -payer <friend> -with <friends> [-date YYYY-MM-DD]

  Records an expense paid by one friend and split equally among the
  friends named in -with. The payer and all participants must already be
  registered.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *addExpenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.input()
	if err != nil {
		return fail(err)
	}
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	e, err := a.book.AddExpense(in)
	if err != nil {
		return fail(err)
	}
	if err := a.save(ctx); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded expense %s (%s, %s)\n", shortID(e.ID), e.Description, formatAmount(e.Amount, a.cfg.Currency))
	printPlan(a.book.Settle(), a.cfg.Currency)
	return subcommands.ExitSuccess
}
