package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

// InvoiceUseCase validates and "sends" invoice drafts.
type InvoiceUseCase struct {
	notifier Notifier
	idGen    IDGenerator
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(notifier Notifier, idGen IDGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{
		notifier: notifier,
		idGen:    idGen,
	}
}

// SubmitInvoiceResult describes an accepted submission.
type SubmitInvoiceResult struct {
	Reference string
	Total     decimal.Decimal
	Notified  []string
}

// Submit validates the draft and, on success, notifies the fixed recipient
// set. On failure it returns the specific unmet precondition so the caller
// can display the exact reason; no notification is sent in that case.
func (uc *InvoiceUseCase) Submit(ctx context.Context, draft domain.InvoiceDraft) (*SubmitInvoiceResult, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	result := &SubmitInvoiceResult{
		Reference: fmt.Sprintf("INV-%s", uc.idGen.Generate()),
		Total:     draft.Total(),
	}

	subject := fmt.Sprintf("Invoice %s for %s", result.Reference, draft.CustomerName)
	body := fmt.Sprintf("Total %s SAR across %d line items", result.Total, len(draft.LineItems))

	for _, recipient := range InvoiceRecipients {
		err := uc.notifier.Send(ctx, Notification{
			Recipient: recipient,
			Subject:   subject,
			Body:      body,
		})
		if err != nil {
			return nil, fmt.Errorf("notify %s: %w", recipient, err)
		}

		result.Notified = append(result.Notified, recipient)
	}

	return result, nil
}
