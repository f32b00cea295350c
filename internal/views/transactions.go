package views

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/passbook-dev/passbook/internal/model"
)

// TransactionsView renders the statement, newest first.
type TransactionsView struct {
	CurrencySymbol string
	Limit          int // 0 = all
}

// NewTransactionsView returns a view showing at most limit entries.
func NewTransactionsView(symbol string, limit int) *TransactionsView {
	return &TransactionsView{CurrencySymbol: symbol, Limit: limit}
}

// Render prints the most recent transactions.
func (v *TransactionsView) Render(txns []model.Transaction) error {
	if v.Limit > 0 && len(txns) > v.Limit {
		txns = txns[:v.Limit]
	}

	data := pterm.TableData{{"ID", "When", "Description", "Amount"}}
	for _, t := range txns {
		amount := v.CurrencySymbol + t.Amount.Abs().StringFixed(2)
		if t.Type == model.TransactionPositive {
			amount = pterm.Green("+" + amount)
		} else {
			amount = pterm.Red("-" + amount)
		}
		data = append(data, []string{strconv.Itoa(t.ID), t.Date, t.Name, amount})
	}

	pterm.DefaultSection.Println("Recent Transactions")
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Showing %d transactions\n", len(txns))
	return nil
}
