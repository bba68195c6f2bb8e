// Package cli implements the splitledger subcommands. Commands are thin:
// they load the ledger through the persistence gateway, invoke one engine
// operation, save, and render the result.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/splitledger/splitledger/internal/config"
	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/storage"
	"github.com/splitledger/splitledger/internal/storage/jsonfile"
	"github.com/splitledger/splitledger/internal/storage/sqlite"
)

// Commands is the full set of subcommands registered by the main package.
var Commands = []subcommands.Command{
	&addFriendCmd{},
	&removeFriendCmd{},
	&addExpenseCmd{},
	&editExpenseCmd{},
	&deleteExpenseCmd{},
	&listCmd{},
	&balancesCmd{},
	&settleCmd{},
	&exportCmd{},
	&clearCmd{},
}

// app bundles the runtime pieces a command needs: the configuration, the
// open store, and the ledger loaded from it.
type app struct {
	cfg   config.Config
	store storage.Store
	book  *ledger.Ledger
}

// openApp loads the configuration, opens the configured backend, and loads
// the ledger from it (friends before expenses).
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var store storage.Store
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err = sqlite.New(filepath.Join(cfg.DataDir, "splitledger.db"))
	default:
		store, err = jsonfile.New(cfg.DataDir)
	}
	if err != nil {
		return nil, err
	}

	friends, err := store.LoadParticipants(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	expenses, err := store.LoadExpenses(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}

	book := ledger.New()
	if err := book.Replace(friends, expenses); err != nil {
		store.Close()
		return nil, err
	}

	slog.Debug("ledger loaded",
		"backend", cfg.Backend,
		"friends", len(friends),
		"expenses", len(expenses),
	)
	return &app{cfg: cfg, store: store, book: book}, nil
}

// save writes the whole ledger back through the gateway, friends first.
func (a *app) save(ctx context.Context) error {
	if err := a.store.SaveParticipants(ctx, a.book.Participants()); err != nil {
		return err
	}
	return a.store.SaveExpenses(ctx, a.book.Expenses())
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("failed to close store", "error", err)
	}
}

// fail prints the error and maps it to a command exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
