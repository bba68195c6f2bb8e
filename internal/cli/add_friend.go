package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addFriendCmd struct{}

func (*addFriendCmd) Name() string     { return "add-friend" }
func (*addFriendCmd) Synopsis() string { return "register one or more friends" }
func (*addFriendCmd) Usage() string {
	return `splitledger add-friend NAME...

  Registers friends who can pay for or share in expenses. Names are
  case-sensitive and must be unique.
`
}

func (*addFriendCmd) SetFlags(*flag.FlagSet) {}

func (*addFriendCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return fail(fmt.Errorf("at least one friend name is required"))
	}
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	for _, name := range f.Args() {
		if err := a.book.AddParticipant(name); err != nil {
			return fail(err)
		}
	}
	if err := a.save(ctx); err != nil {
		return fail(err)
	}
	fmt.Printf("Added %d friend(s)\n", f.NArg())
	return subcommands.ExitSuccess
}
