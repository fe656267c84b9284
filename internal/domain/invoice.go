package domain

import "github.com/shopspring/decimal"

// LineItem is one row of an invoice draft.
type LineItem struct {
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// InvoiceDraft is an invoice under construction. Submission is gated on the
// customer approval flag, a non-empty customer name, and a positive total.
type InvoiceDraft struct {
	CustomerName     string
	Address          string
	Note             string
	LineItems        []LineItem
	CustomerApproved bool
}

// Total is the sum of quantity times unit price over all line items.
func (d *InvoiceDraft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range d.LineItems {
		total = total.Add(li.Quantity.Mul(li.UnitPrice))
	}
	return total
}

// Validate returns the first unmet submission precondition so the caller can
// display the exact reason.
func (d *InvoiceDraft) Validate() error {
	if !d.CustomerApproved {
		return ErrInvoiceNotApproved
	}
	if d.CustomerName == "" {
		return ErrInvoiceMissingCustomer
	}
	if !d.Total().IsPositive() {
		return ErrInvoiceEmptyTotal
	}
	return nil
}
