package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category tags a ledger record with the action that produced it.
type Category string

const (
	CategoryDeposit      Category = "deposit"
	CategoryWithdraw     Category = "withdraw"
	CategoryTransfer     Category = "transfer"
	CategoryPurchase     Category = "purchase"
	CategoryP2P          Category = "p2p"
	CategoryVendor       Category = "vendor"
	CategoryFX           Category = "fx"
	CategorySubscription Category = "subscription"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDeposit, CategoryWithdraw, CategoryTransfer, CategoryPurchase,
		CategoryP2P, CategoryVendor, CategoryFX, CategorySubscription:
		return true
	}
	return false
}

// Record is a single ledger entry. Once appended its fields never change;
// the sign of Amount encodes direction (negative = outflow).
type Record struct {
	Timestamp   time.Time
	ID          string
	Description string
	Currency    string
	Category    Category
	Amount      decimal.Decimal
}

// Inflow reports whether the record adds funds.
func (r *Record) Inflow() bool {
	return r.Amount.IsPositive()
}
