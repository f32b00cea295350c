package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbook-dev/passbook/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, false))

	// Config file exists with defaults.
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.False(t, cfg.Git.AutoCommit)

	// All three collections were seeded and persisted.
	for _, name := range []string{"accounts.json", "transactions.json", "notifications.json"} {
		_, err := os.Stat(filepath.Join(dir, "data", name))
		require.NoError(t, err, "%s should exist", name)
	}

	// Seed accounts round-trip as JSON with the expected keys.
	data, err := os.ReadFile(filepath.Join(dir, "data", "accounts.json"))
	require.NoError(t, err)
	var accounts map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &accounts))
	assert.Contains(t, accounts, "checking")
	assert.Contains(t, accounts, "savings")
	assert.Contains(t, accounts, "investment")

	// Logs directory is ready for the audit trail.
	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestRunInitAutoCommit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir, true))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, "init --auto-commit should create a git repo")

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)
}
