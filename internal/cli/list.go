package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/splitledger/splitledger/internal/ledger"
)

type listCmd struct {
	by    string
	match string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list expenses, optionally filtered" }
func (*listCmd) Usage() string {
	return `splitledger list [-by <criterion> -match <value>]

  Lists expenses in recording order. With -by and -match, only expenses
  whose field contains the value (case-insensitive) are shown. Criteria:
  all, date, description, payer, participant.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.by, "by", string(ledger.CriterionAll), "filter criterion")
	f.StringVar(&c.match, "match", "", "filter value")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	criterion, err := ledger.ParseCriterion(c.by)
	if err != nil {
		return fail(err)
	}
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	expenses := a.book.Filter(criterion, c.match)
	if len(expenses) == 0 {
		fmt.Println("No expenses")
		return subcommands.ExitSuccess
	}
	printExpenses(expenses, a.cfg.Currency)
	return subcommands.ExitSuccess
}
