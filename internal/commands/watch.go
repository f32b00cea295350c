package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/ledger"
	"github.com/passbook-dev/passbook/internal/views"
)

func newWatchCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the ledger on screen, refreshing relative times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

// runWatch renders the collections, re-renders whenever the store
// reports a change, and ticks the relative-time refresh at the
// configured interval. The timer lives here, not in the store; Ctrl-C
// cancels it and flushes a final persist.
func runWatch(dir string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}

	symbol := e.cfg.Display.CurrencySymbol
	accountsView := views.NewAccountsView(symbol)
	txView := views.NewTransactionsView(symbol, 10)
	noteView := views.NewNotificationsView()

	e.svc.Subscribe(func(ev ledger.Event) {
		var renderErr error
		switch ev {
		case ledger.EventAccounts:
			renderErr = accountsView.Render(e.svc.Accounts())
		case ledger.EventTransactions:
			renderErr = txView.Render(e.svc.Transactions())
		case ledger.EventNotifications:
			renderErr = noteView.Render(e.svc.Notifications(), e.svc.UnreadNotificationCount())
		}
		if renderErr != nil {
			pterm.Warning.Printf("render: %v\n", renderErr)
		}
	})

	if err := accountsView.Render(e.svc.Accounts()); err != nil {
		return err
	}
	if err := txView.Render(e.svc.Transactions()); err != nil {
		return err
	}
	if err := noteView.Render(e.svc.Notifications(), e.svc.UnreadNotificationCount()); err != nil {
		return err
	}

	interval := time.Duration(e.cfg.Display.RefreshSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Session end: flush so refreshed labels reach disk.
			if err := e.svc.Persist(); err != nil {
				return fmt.Errorf("final persist: %w", err)
			}
			pterm.Info.Println("Saved and stopped")
			return nil
		case <-ticker.C:
			e.svc.RefreshTimestamps()
		}
	}
}
