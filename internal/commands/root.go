// Package commands wires the ledger store, views, and supporting
// services into the passbook CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "passbook",
		Short:   "Demo banking ledger in your terminal",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(),
		newTransactionsCommand(),
		newNotificationsCommand(),
		newDepositCommand(),
		newTransferCommand(),
		newImportCommand(),
		newWatchCommand(),
	)

	return rootCmd
}
