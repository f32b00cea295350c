package model

import "github.com/shopspring/decimal"

// Account is one entry in the accounts collection. The collection is a
// map keyed by a short account key such as "checking".
type Account struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Number  string          `json:"number"` // masked, e.g. "•••• 4582"
	Icon    string          `json:"icon"`
}
