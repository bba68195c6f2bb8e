package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type settleCmd struct{}

func (*settleCmd) Name() string     { return "settle" }
func (*settleCmd) Synopsis() string { return "show the payments that settle all balances" }
func (*settleCmd) Usage() string {
	return `splitledger settle

  Computes who should pay whom. Each debtor is matched greedily against
  the largest creditors until their debt is gone.
`
}

func (*settleCmd) SetFlags(*flag.FlagSet) {}

func (*settleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	printPlan(a.book.Settle(), a.cfg.Currency)
	return subcommands.ExitSuccess
}
