package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show each friend's totals and balance" }
func (*balancesCmd) Usage() string {
	return `splitledger balances

  Shows total paid, total owed, and the resulting balance per friend.
  A positive balance means others owe them money.
`
}

func (*balancesCmd) SetFlags(*flag.FlagSet) {}

func (*balancesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	balances := a.book.Balances()
	if len(balances) == 0 {
		fmt.Println("No friends yet")
		return subcommands.ExitSuccess
	}
	printBalances(balances, a.cfg.Currency)
	return subcommands.ExitSuccess
}
