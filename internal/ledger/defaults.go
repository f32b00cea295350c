package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/model"
	"github.com/passbook-dev/passbook/internal/reltime"
)

// seedAge is how far in the past the seed records are dated.
const seedAge = 24 * time.Hour

// defaultAccounts returns the seed accounts used when storage has no
// accounts collection.
func defaultAccounts() map[string]model.Account {
	return map[string]model.Account{
		"checking": {
			Name:    "Primary Checking",
			Balance: decimal.NewFromFloat(500000.00),
			Number:  "•••• 4582",
			Icon:    "💳",
		},
		"savings": {
			Name:    "High-Yield Savings",
			Balance: decimal.Zero,
			Number:  "•••• 7890",
			Icon:    "🏦",
		},
		"investment": {
			Name:    "Investment Portfolio",
			Balance: decimal.Zero,
			Number:  "•••• 1234",
			Icon:    "📈",
		},
	}
}

// defaultTransactions returns the single seed statement entry, dated a
// day before first load.
func defaultTransactions(now time.Time) []model.Transaction {
	ts := now.Add(-seedAge)
	return []model.Transaction{{
		ID:        1,
		Name:      "CSBG Assistant Program Deposit",
		Date:      reltime.String(now, ts),
		Amount:    decimal.NewFromFloat(500000.00),
		Type:      model.TransactionPositive,
		Icon:      "fas fa-arrow-down",
		IconBg:    "#e6f7e6",
		Timestamp: ts.UnixMilli(),
	}}
}

// defaultNotifications returns the three seed notifications, all
// unread, referencing the seed deposit.
func defaultNotifications(now time.Time) []model.Notification {
	ts := now.Add(-seedAge)
	stamp := ts.UnixMilli()
	label := reltime.String(now, ts)
	return []model.Notification{
		{
			ID:        1,
			Title:     "Large deposit detected",
			Subtitle:  "$500,000.00 deposited to Primary Checking",
			Time:      label,
			Icon:      "fas fa-dollar-sign",
			Timestamp: stamp,
		},
		{
			ID:        2,
			Title:     "CSBG Assistant Program",
			Subtitle:  "Funds have been successfully deposited",
			Time:      label,
			Icon:      "fas fa-hand-holding-heart",
			Timestamp: stamp,
		},
		{
			ID:        3,
			Title:     "Account alert",
			Subtitle:  "Your balance has increased significantly",
			Time:      label,
			Icon:      "fas fa-chart-line",
			Timestamp: stamp,
		},
	}
}
