package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type editExpenseCmd struct {
	expenseFlags
	id string
}

func (*editExpenseCmd) Name() string     { return "edit" }
func (*editExpenseCmd) Synopsis() string { return "replace the fields of an expense" }
func (*editExpenseCmd) Usage() string {
	return `splitledger edit -id <expense> -desc <text> -amount <n> -payer <friend> -with <friends> [-date YYYY-MM-DD]

  Replaces every field of the expense. The old expense's effect on the
  totals is fully reversed before the new one is applied.
`
}

func (c *editExpenseCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.id, "id", "", "id of the expense to edit")
}

func (c *editExpenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("-id is required"))
	}
	in, err := c.input()
	if err != nil {
		return fail(err)
	}
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	id, err := resolveExpenseID(a.book, c.id)
	if err != nil {
		return fail(err)
	}
	e, err := a.book.UpdateExpense(id, in)
	if err != nil {
		return fail(err)
	}
	if err := a.save(ctx); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated expense %s\n", shortID(e.ID))
	printPlan(a.book.Settle(), a.cfg.Currency)
	return subcommands.ExitSuccess
}
