package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"

	"github.com/passbook-dev/passbook/internal/auditlog"
	"github.com/passbook-dev/passbook/internal/config"
	"github.com/passbook-dev/passbook/internal/gitops"
	"github.com/passbook-dev/passbook/internal/ledger"
	"github.com/passbook-dev/passbook/internal/storage"
)

// env bundles what every command needs: the project root, its config,
// and a loaded ledger service.
type env struct {
	dir string
	cfg *config.Config
	svc *ledger.Service
}

// openEnv resolves dir, reads passbook.yaml (defaults when absent),
// and loads the ledger from the project's data directory.
func openEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := config.Default()
	loaded, err := config.Load(filepath.Join(absDir, config.FileName))
	switch {
	case err == nil:
		cfg = loaded
	case errors.Is(err, fs.ErrNotExist):
		// No project file: run with defaults.
	default:
		return nil, err
	}

	kv, err := storage.NewFileKV(filepath.Join(absDir, cfg.Data.Dir))
	if err != nil {
		return nil, err
	}

	svc := ledger.New(kv)
	if err := svc.Load(); err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	return &env{dir: absDir, cfg: cfg, svc: svc}, nil
}

// recordMutation appends an audit entry and, when enabled, snapshots
// the project with git. Both run after the mutation has persisted and
// are best-effort: failures warn but never unwind the ledger.
func (e *env) recordMutation(op, details string) {
	entry := auditlog.Entry{Timestamp: time.Now(), Op: op, Details: details}
	if err := auditlog.Append(e.dir, []auditlog.Entry{entry}); err != nil {
		pterm.Warning.Printf("audit log: %v\n", err)
	}

	if e.cfg.Git.AutoCommit && gitops.IsRepo(e.dir) {
		if _, err := gitops.Snapshot(e.dir, "passbook: "+op, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail); err != nil {
			pterm.Warning.Printf("git snapshot: %v\n", err)
		}
	}
}
