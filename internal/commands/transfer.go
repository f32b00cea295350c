package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/views"
)

func newTransferCommand() *cobra.Command {
	var dir string
	var description string
	var external bool

	cmd := &cobra.Command{
		Use:   "transfer <from> <to> <amount>",
		Short: "Transfer money between accounts or to an external recipient",
		Long: `Transfer money out of an account.

By default <to> is another account key in this project. With --external,
<to> is the display name of a recipient outside the project and no local
account is credited.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[2], err)
			}
			return runTransfer(dir, args[0], args[1], amount, description, external)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&description, "description", "", "statement description")
	cmd.Flags().BoolVar(&external, "external", false, "send outside the project; <to> becomes the recipient name")

	return cmd
}

func runTransfer(dir, from, to string, amount decimal.Decimal, description string, external bool) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}

	if external {
		err = e.svc.Transfer(from, "", amount, description, true, to)
	} else {
		err = e.svc.Transfer(from, to, amount, description, false, "")
	}
	if err != nil {
		return err
	}
	e.recordMutation("transfer", fmt.Sprintf("%s %s -> %s", amount.StringFixed(2), from, to))

	pterm.Success.Printf("Transferred %s%s from %s to %s\n", e.cfg.Display.CurrencySymbol, amount.StringFixed(2), from, to)
	return views.NewAccountsView(e.cfg.Display.CurrencySymbol).Render(e.svc.Accounts())
}
