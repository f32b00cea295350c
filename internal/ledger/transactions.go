package ledger

import (
	"fmt"

	"github.com/passbook-dev/passbook/internal/model"
	"github.com/passbook-dev/passbook/internal/reltime"
)

// nextTransactionID returns max existing id + 1, or 1 when the
// statement is empty. Ids are unique and strictly increasing in
// assignment order even though insertion is at the front.
func nextTransactionID(txns []model.Transaction) int {
	next := 1
	for _, t := range txns {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// AddTransaction assigns an id and timestamp to candidate, inserts it
// at the front of the statement, and records a matching notification:
// "Deposit Received" for credits, "Transfer Sent" for debits, with the
// signed amount and name in the subtitle. Returns the stored entry.
func (s *Service) AddTransaction(candidate model.Transaction) (model.Transaction, error) {
	now := s.now()
	candidate.ID = nextTransactionID(s.transactions)
	candidate.Timestamp = now.UnixMilli()
	candidate.Date = reltime.String(now, now)
	s.transactions = append([]model.Transaction{candidate}, s.transactions...)

	title, sign, icon := "Transfer Sent", "-", "fas fa-arrow-right"
	if candidate.Type == model.TransactionPositive {
		title, sign, icon = "Deposit Received", "+", "fas fa-arrow-down"
	}
	_, err := s.AddNotification(model.Notification{
		Title:    title,
		Subtitle: fmt.Sprintf("%s$%s - %s", sign, candidate.Amount.Abs().StringFixed(2), candidate.Name),
		Icon:     icon,
	})
	if err != nil {
		return model.Transaction{}, err
	}

	if err := s.Persist(); err != nil {
		return model.Transaction{}, err
	}
	s.emit(EventTransactions)
	return candidate, nil
}
