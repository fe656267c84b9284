package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked item in the technician app. QuantityOnHand is
// never negative: a consume that would overshoot clamps to zero.
type InventoryItem struct {
	ID               string
	Name             string
	Unit             string
	QuantityOnHand   decimal.Decimal
	ReorderThreshold decimal.Decimal
}

// Consume reduces the on-hand quantity, clamping at zero, and returns the
// quantity actually removed.
func (i *InventoryItem) Consume(qty decimal.Decimal) decimal.Decimal {
	remaining := i.QuantityOnHand.Sub(qty)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	consumed := i.QuantityOnHand.Sub(remaining)
	i.QuantityOnHand = remaining
	return consumed
}

// NeedsReorder reports whether on-hand stock fell to the reorder threshold.
func (i *InventoryItem) NeedsReorder() bool {
	return i.QuantityOnHand.LessThanOrEqual(i.ReorderThreshold)
}

// ReplenishmentRequest is appended to its own ledger-like list every time an
// item is consumed.
type ReplenishmentRequest struct {
	Timestamp        time.Time
	Code             string
	ItemID           string
	QuantityConsumed decimal.Decimal
}
