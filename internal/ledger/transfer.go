package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/passbook-dev/passbook/internal/model"
)

// UpdateAccountBalance replaces the balance for an existing account
// key and persists. Unknown keys are a silent no-op.
func (s *Service) UpdateAccountBalance(key string, balance decimal.Decimal) error {
	acct, ok := s.accounts[key]
	if !ok {
		return nil
	}
	acct.Balance = balance
	s.accounts[key] = acct

	if err := s.Persist(); err != nil {
		return err
	}
	s.emit(EventAccounts)
	return nil
}

// Transfer moves amount out of the from account. Internal transfers
// credit the destination and use its display name; external transfers
// leave the modeled accounts entirely, named by externalName (or a
// generic label). Returns ErrInsufficientFunds, with no state change,
// when the source is missing or cannot cover the amount.
//
// Only the source side gets a statement entry; an internal
// destination's balance changes without one. That asymmetry is
// deliberate (see DESIGN.md).
func (s *Service) Transfer(from, to string, amount decimal.Decimal, description string, external bool, externalName string) error {
	src, ok := s.accounts[from]
	if !ok || src.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	src.Balance = src.Balance.Sub(amount)
	s.accounts[from] = src

	toName := "External Account"
	if dst, ok := s.accounts[to]; !external && ok {
		dst.Balance = dst.Balance.Add(amount)
		s.accounts[to] = dst
		toName = dst.Name
	} else if externalName != "" {
		toName = externalName
	}

	if description == "" {
		description = "Transfer"
	}
	if _, err := s.AddTransaction(model.Transaction{
		Name:   description,
		Amount: amount.Neg(),
		Type:   model.TransactionNegative,
		Icon:   "fas fa-arrow-right",
		IconBg: "#ffe8e8",
	}); err != nil {
		return err
	}

	if _, err := s.AddNotification(model.Notification{
		Title:    "Transfer Completed",
		Subtitle: fmt.Sprintf("$%s transferred to %s", amount.StringFixed(2), toName),
		Icon:     "fas fa-exchange-alt",
	}); err != nil {
		return err
	}

	if err := s.Persist(); err != nil {
		return err
	}
	s.emit(EventAccounts)
	return nil
}

// Deposit credits amount to the account at key and records a positive
// statement entry plus a "Deposit Received" notification. Returns
// ErrAccountNotFound, with no state change, for an unknown key.
func (s *Service) Deposit(to string, amount decimal.Decimal, description string) error {
	acct, ok := s.accounts[to]
	if !ok {
		return ErrAccountNotFound
	}
	acct.Balance = acct.Balance.Add(amount)
	s.accounts[to] = acct

	if description == "" {
		description = "Deposit"
	}
	if _, err := s.AddTransaction(model.Transaction{
		Name:   description,
		Amount: amount,
		Type:   model.TransactionPositive,
		Icon:   "fas fa-arrow-down",
		IconBg: "#e6f7e6",
	}); err != nil {
		return err
	}

	if _, err := s.AddNotification(model.Notification{
		Title:    "Deposit Received",
		Subtitle: fmt.Sprintf("$%s deposited to %s", amount.StringFixed(2), acct.Name),
		Icon:     "fas fa-download",
	}); err != nil {
		return err
	}

	if err := s.Persist(); err != nil {
		return err
	}
	s.emit(EventAccounts)
	return nil
}
