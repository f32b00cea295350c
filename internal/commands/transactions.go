package commands

import (
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/views"
)

func newTransactionsCommand() *cobra.Command {
	var dir string
	var limit int

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Show recent transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			e.svc.RefreshTimestamps()
			return views.NewTransactionsView(e.cfg.Display.CurrencySymbol, limit).Render(e.svc.Transactions())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum entries to show (0 = all)")

	return cmd
}
