package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

// AmountRequest carries a single signed amount (deposit, withdraw,
// transfer).
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PurchaseRequest carries a purchase description and amount.
type PurchaseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// P2PRequest carries a recipient handle and amount.
type P2PRequest struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
}

// VendorPaymentRequest names the vendor to pay; the amount is chosen
// server-side.
type VendorPaymentRequest struct {
	VendorName string `json:"vendor_name"`
}

// ConsumeRequest removes stock from an inventory item.
type ConsumeRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// InvoiceLineItem is one row of an invoice submission.
type InvoiceLineItem struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SubmitInvoiceRequest represents an invoice draft submission.
type SubmitInvoiceRequest struct {
	CustomerName     string            `json:"customer_name"`
	Address          string            `json:"address"`
	Note             string            `json:"note"`
	LineItems        []InvoiceLineItem `json:"line_items"`
	CustomerApproved bool              `json:"customer_approved"`
}

// ToDomain converts the request to an invoice draft.
func (r *SubmitInvoiceRequest) ToDomain() domain.InvoiceDraft {
	items := make([]domain.LineItem, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = domain.LineItem{
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		}
	}

	return domain.InvoiceDraft{
		CustomerName:     r.CustomerName,
		Address:          r.Address,
		Note:             r.Note,
		LineItems:        items,
		CustomerApproved: r.CustomerApproved,
	}
}
