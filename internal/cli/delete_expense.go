package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteExpenseCmd struct{}

func (*deleteExpenseCmd) Name() string     { return "delete" }
func (*deleteExpenseCmd) Synopsis() string { return "delete expenses by id" }
func (*deleteExpenseCmd) Usage() string {
	return `splitledger delete ID...

  Deletes the expenses with the given ids, reversing their effect on the
  totals. If any id is unknown, nothing is deleted.
`
}

func (*deleteExpenseCmd) SetFlags(*flag.FlagSet) {}

func (*deleteExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return fail(fmt.Errorf("at least one expense id is required"))
	}
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	ids := make([]string, 0, f.NArg())
	for _, arg := range f.Args() {
		id, err := resolveExpenseID(a.book, arg)
		if err != nil {
			return fail(err)
		}
		ids = append(ids, id)
	}
	if err := a.book.DeleteExpenses(ids); err != nil {
		return fail(err)
	}
	if err := a.save(ctx); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted %d expense(s)\n", len(ids))
	return subcommands.ExitSuccess
}
