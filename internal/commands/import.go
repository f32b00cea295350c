package commands

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/importer"
)

func newImportCommand() *cobra.Command {
	var dir string
	var account string
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replay a statement CSV into an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(dir, args[0], account, format)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&account, "account", "checking", "account key to import into")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format")

	return cmd
}

func runImport(dir, file, account, format string) error {
	parser := importer.DefaultRegistry().Get(format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", format)
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing statement: %w", err)
	}

	e, err := openEnv(dir)
	if err != nil {
		return err
	}

	res := importer.Apply(e.svc, account, rows)
	for _, skipErr := range res.Skipped {
		pterm.Warning.Printf("skipped: %v\n", skipErr)
	}
	e.recordMutation("import", fmt.Sprintf("%d rows into %s", res.Applied, account))

	pterm.Success.Printf("Imported %d of %d rows into %s\n", res.Applied, len(rows), account)
	return nil
}
