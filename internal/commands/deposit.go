package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/views"
)

func newDepositCommand() *cobra.Command {
	var dir string
	var description string

	cmd := &cobra.Command{
		Use:   "deposit <account> <amount>",
		Short: "Deposit money into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			return runDeposit(dir, args[0], amount, description)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&description, "description", "", "statement description")

	return cmd
}

func runDeposit(dir, account string, amount decimal.Decimal, description string) error {
	e, err := openEnv(dir)
	if err != nil {
		return err
	}

	if err := e.svc.Deposit(account, amount, description); err != nil {
		return err
	}
	e.recordMutation("deposit", fmt.Sprintf("%s to %s", amount.StringFixed(2), account))

	pterm.Success.Printf("Deposited %s%s to %s\n", e.cfg.Display.CurrencySymbol, amount.StringFixed(2), account)
	return views.NewAccountsView(e.cfg.Display.CurrencySymbol).Render(e.svc.Accounts())
}
