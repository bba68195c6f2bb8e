package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type removeFriendCmd struct {
	yes bool
}

func (*removeFriendCmd) Name() string     { return "remove-friend" }
func (*removeFriendCmd) Synopsis() string { return "remove friends and every expense involving them" }
func (*removeFriendCmd) Usage() string {
	return `splitledger remove-friend -yes NAME...

  Removes the named friends. Every expense they paid or shared in is
  deleted as well, and the remaining totals are rebuilt. This cannot be
  undone, so -yes is required.
`
}

func (c *removeFriendCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "confirm the removal")
}

func (c *removeFriendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		return fail(fmt.Errorf("removing friends also removes their expenses; pass -yes to confirm"))
	}
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	before := len(a.book.Expenses())
	if err := a.book.RemoveParticipants(f.Args()); err != nil {
		return fail(err)
	}
	if err := a.save(ctx); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed %d friend(s) and %d expense(s)\n", f.NArg(), before-len(a.book.Expenses()))
	return subcommands.ExitSuccess
}
