package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbook-dev/passbook/internal/model"
	"github.com/passbook-dev/passbook/internal/storage"
)

func balance(t *testing.T, svc *Service, key string) decimal.Decimal {
	t.Helper()
	acct, ok := svc.Account(key)
	require.True(t, ok)
	return acct.Balance
}

func TestTransferConservesInternalTotal(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	before := balance(t, svc, "checking").Add(balance(t, svc, "savings"))
	amount := decimal.NewFromFloat(1234.56)

	require.NoError(t, svc.Transfer("checking", "savings", amount, "Savings top-up", false, ""))

	assert.True(t, balance(t, svc, "checking").Equal(decimal.NewFromInt(500000).Sub(amount)))
	assert.True(t, balance(t, svc, "savings").Equal(amount))

	after := balance(t, svc, "checking").Add(balance(t, svc, "savings"))
	assert.True(t, before.Equal(after), "internal transfer must conserve total: %s != %s", before, after)
}

func TestTransferRecordsSourceSideOnly(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	require.NoError(t, svc.Transfer("checking", "savings", decimal.NewFromInt(100), "Savings top-up", false, ""))

	// One debit entry against the source; the destination balance moved
	// without an entry of its own.
	txns := svc.Transactions()
	require.Len(t, txns, 2) // seed + transfer
	assert.Equal(t, model.TransactionNegative, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(-100)))

	// Two notifications per transfer: the derived "Transfer Sent" plus
	// "Transfer Completed" naming the destination.
	notes := svc.Notifications()
	require.GreaterOrEqual(t, len(notes), 2)
	assert.Equal(t, "Transfer Completed", notes[0].Title)
	assert.Equal(t, "$100.00 transferred to High-Yield Savings", notes[0].Subtitle)
	assert.Equal(t, "Transfer Sent", notes[1].Title)
}

func TestTransferInsufficientFunds(t *testing.T) {
	kv := storage.NewMemory()
	clock := testNow
	svc := newTestService(t, kv, &clock)

	txnsBefore := len(svc.Transactions())
	notesBefore := len(svc.Notifications())

	err := svc.Transfer("savings", "checking", decimal.NewFromInt(1), "Too much", false, "")
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.EqualError(t, err, "Insufficient funds")

	// No state change anywhere.
	assert.True(t, balance(t, svc, "savings").IsZero())
	assert.True(t, balance(t, svc, "checking").Equal(decimal.NewFromInt(500000)))
	assert.Len(t, svc.Transactions(), txnsBefore)
	assert.Len(t, svc.Notifications(), notesBefore)
}

func TestTransferUnknownSourceFails(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	err := svc.Transfer("offshore", "checking", decimal.NewFromInt(1), "", false, "")
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestTransferExternal(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	require.NoError(t, svc.Transfer("checking", "", decimal.NewFromFloat(50.25), "Rent share", true, "Alice Chen"))

	assert.True(t, balance(t, svc, "checking").Equal(decimal.NewFromFloat(499949.75)))
	// Internal balances other than the source are untouched.
	assert.True(t, balance(t, svc, "savings").IsZero())

	assert.Equal(t, "$50.25 transferred to Alice Chen", svc.Notifications()[0].Subtitle)
}

func TestTransferExternalFallbackLabel(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	require.NoError(t, svc.Transfer("checking", "", decimal.NewFromInt(10), "", true, ""))

	assert.Equal(t, "$10.00 transferred to External Account", svc.Notifications()[0].Subtitle)
	// Blank description falls back to a generic one.
	assert.Equal(t, "Transfer", svc.Transactions()[0].Name)
}

func TestDeposit(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	require.NoError(t, svc.Deposit("investment", decimal.NewFromFloat(999.99), "Dividend"))

	assert.True(t, balance(t, svc, "investment").Equal(decimal.NewFromFloat(999.99)))

	txns := svc.Transactions()
	assert.Equal(t, model.TransactionPositive, txns[0].Type)
	assert.Equal(t, "Dividend", txns[0].Name)

	notes := svc.Notifications()
	assert.Equal(t, "Deposit Received", notes[0].Title)
	assert.Equal(t, "$999.99 deposited to Investment Portfolio", notes[0].Subtitle)
}

func TestDepositUnknownAccount(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	txnsBefore := len(svc.Transactions())
	notesBefore := len(svc.Notifications())

	err := svc.Deposit("offshore", decimal.NewFromInt(100), "")
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.EqualError(t, err, "Account not found")

	assert.Len(t, svc.Transactions(), txnsBefore)
	assert.Len(t, svc.Notifications(), notesBefore)
}

func TestUpdateAccountBalance(t *testing.T) {
	clock := testNow
	svc := newTestService(t, storage.NewMemory(), &clock)

	require.NoError(t, svc.UpdateAccountBalance("savings", decimal.NewFromInt(777)))
	assert.True(t, balance(t, svc, "savings").Equal(decimal.NewFromInt(777)))

	// Unknown key is a silent no-op.
	require.NoError(t, svc.UpdateAccountBalance("offshore", decimal.NewFromInt(1)))
	_, ok := svc.Account("offshore")
	assert.False(t, ok)
}
