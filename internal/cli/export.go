package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/subcommands"

	"github.com/splitledger/splitledger/internal/storage"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export expenses as CSV" }
func (*exportCmd) Usage() string {
	return `splitledger export -o FILE

  Writes all expenses to a CSV file with a Date,Description,Amount,Payer,
  Participants header row.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "expenses.csv", "output file path")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer a.close()

	expenses := a.book.Expenses()
	if err := storage.ExportCSV(c.out, expenses); err != nil {
		return fail(err)
	}
	slog.Info("exported expenses", "file", c.out, "count", len(expenses))
	fmt.Printf("Saved %d expense(s) to %s\n", len(expenses), c.out)
	return subcommands.ExitSuccess
}
