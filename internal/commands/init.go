package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/passbook-dev/passbook/internal/config"
	"github.com/passbook-dev/passbook/internal/gitops"
	"github.com/passbook-dev/passbook/internal/ledger"
	"github.com/passbook-dev/passbook/internal/storage"
)

func newInitCommand() *cobra.Command {
	var autoCommit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new passbook project with seed data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, autoCommit)
		},
	}

	cmd.Flags().BoolVar(&autoCommit, "auto-commit", false, "snapshot the project with git after each mutation")

	return cmd
}

func runInit(dir string, autoCommit bool) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating project directories: %w", err)
	}

	cfg := config.Default()
	cfg.Git.AutoCommit = autoCommit
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed and persist the three collections.
	kv, err := storage.NewFileKV(filepath.Join(dir, cfg.Data.Dir))
	if err != nil {
		return err
	}
	svc := ledger.New(kv)
	if err := svc.Load(); err != nil {
		return fmt.Errorf("seeding ledger: %w", err)
	}
	if err := svc.Persist(); err != nil {
		return fmt.Errorf("persisting seed data: %w", err)
	}

	if autoCommit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return fmt.Errorf("git init: %w", err)
			}
		}
		if _, err := gitops.Snapshot(dir, "passbook: init", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("git snapshot: %w", err)
		}
	}

	pterm.Success.Printf("Initialized passbook project in %s\n", dir)
	return nil
}
