package domain

import "github.com/shopspring/decimal"

// Account is one entry of the account set: a display name plus a live
// balance kept in lockstep with the ledger. Balances may go negative; the
// observed behavior has no overdraft check and that is a design choice,
// not a gap.
type Account struct {
	ID          string
	DisplayName string
	IBAN        string
	Currency    string
	Balance     decimal.Decimal
}

// ApplyDelta returns the balance after applying a signed delta.
func (a *Account) ApplyDelta(delta decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(delta)
}
