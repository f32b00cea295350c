package commands

import (
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/views"
)

func newAccountsCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Show account cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dir)
			if err != nil {
				return err
			}
			return views.NewAccountsView(e.cfg.Display.CurrencySymbol).Render(e.svc.Accounts())
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}
