package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all expenses" }
func (*clearCmd) Usage() string {
	return `splitledger clear -yes

  Deletes every expense and zeroes every friend's totals. The friend list
  is kept. This cannot be undone, so -yes is required.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "confirm clearing all expenses")
}

func (c *clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		return fail(fmt.Errorf("this deletes every expense; pass -yes to confirm"))
	}
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	a.book.ClearAll()
	if err := a.save(ctx); err != nil {
		return fail(err)
	}
	fmt.Println("All expenses cleared")
	return subcommands.ExitSuccess
}
