package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbook-dev/passbook/internal/auditlog"
)

func TestDepositTransferWorkflow(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, false))

	require.NoError(t, runDeposit(dir, "savings", decimal.NewFromInt(500), "Payroll"))
	require.NoError(t, runTransfer(dir, "checking", "savings", decimal.NewFromInt(100), "Top-up", false))

	// Balances reflect both operations after reload.
	e, err := openEnv(dir)
	require.NoError(t, err)
	savings, ok := e.svc.Account("savings")
	require.True(t, ok)
	assert.True(t, savings.Balance.Equal(decimal.NewFromInt(600)))
	checking, ok := e.svc.Account("checking")
	require.True(t, ok)
	assert.True(t, checking.Balance.Equal(decimal.NewFromInt(499900)))

	// The audit trail recorded both mutations.
	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "deposit", entries[0].Op)
	assert.Equal(t, "transfer", entries[1].Op)
}

func TestTransferInsufficientFundsSurfaces(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, false))

	err := runTransfer(dir, "savings", "checking", decimal.NewFromInt(50), "", false)
	require.Error(t, err)
	assert.EqualError(t, err, "Insufficient funds")
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, false))

	statement := filepath.Join(dir, "statement.csv")
	csv := "date,description,amount\n2025-06-01,Payroll,2500.00\n2025-06-02,Coffee,-4.50\n"
	require.NoError(t, os.WriteFile(statement, []byte(csv), 0o644))

	require.NoError(t, runImport(dir, statement, "savings", "generic"))

	e, err := openEnv(dir)
	require.NoError(t, err)
	savings, ok := e.svc.Account("savings")
	require.True(t, ok)
	assert.True(t, savings.Balance.Equal(decimal.NewFromFloat(2495.50)))
}

func TestRunImportUnknownFormat(t *testing.T) {
	err := runImport(t.TempDir(), "whatever.csv", "checking", "ofx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown statement format")
}
