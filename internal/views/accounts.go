// Package views renders the collections to the terminal with pterm.
// Views are optional collaborators: commands may run with none
// attached, and a render failure never affects stored data.
package views

import (
	"sort"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/model"
)

// AccountsView renders the account cards as a table.
type AccountsView struct {
	CurrencySymbol string
}

// NewAccountsView returns a view using the given currency symbol.
func NewAccountsView(symbol string) *AccountsView {
	return &AccountsView{CurrencySymbol: symbol}
}

// Render prints all accounts, sorted by key for stable output.
func (v *AccountsView) Render(accounts map[string]model.Account) error {
	keys := make([]string, 0, len(accounts))
	for k := range accounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	data := pterm.TableData{{"Account", "Name", "Number", "Balance"}}
	total := decimal.Zero
	for _, k := range keys {
		a := accounts[k]
		balance := v.CurrencySymbol + a.Balance.StringFixed(2)
		if a.Balance.IsNegative() {
			balance = pterm.Red(balance)
		} else {
			balance = pterm.Green(balance)
		}
		data = append(data, []string{k, a.Icon + " " + a.Name, a.Number, balance})
		total = total.Add(a.Balance)
	}

	pterm.DefaultSection.Println("Accounts")
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %s%s across %d accounts\n", v.CurrencySymbol, total.StringFixed(2), len(keys))
	return nil
}
