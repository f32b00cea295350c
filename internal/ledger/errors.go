package ledger

import "errors"

// The two business failures the store reports explicitly. Everything
// else (unknown account key on balance update, unknown notification id)
// is a silent no-op. The messages are user-facing copy.
var (
	ErrInsufficientFunds = errors.New("Insufficient funds")
	ErrAccountNotFound   = errors.New("Account not found")
)
