package model

import "github.com/shopspring/decimal"

// TransactionType classifies a statement entry for display.
type TransactionType string

const (
	TransactionPositive TransactionType = "positive" // credit
	TransactionNegative TransactionType = "negative" // debit
)

// Transaction is one statement entry. Timestamp is unix milliseconds;
// zero marks a legacy record that will be backfilled by position. Date
// is a cached relative-time string and is always recomputable from
// Timestamp.
type Transaction struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Icon      string          `json:"icon"`
	IconBg    string          `json:"iconBg"`
	Timestamp int64           `json:"timestamp"`
}
