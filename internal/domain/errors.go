package domain

import "errors"

var (
	// Money action errors
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrUnknownAccount  = errors.New("account not found")
	ErrEmptyRecipient  = errors.New("recipient handle must not be empty")
	ErrInvalidCategory = errors.New("unknown record category")

	// Inventory errors
	ErrUnknownItem     = errors.New("inventory item not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// Invoice submission errors; the text is surfaced verbatim to the caller.
	ErrInvoiceNotApproved     = errors.New("invoice not approved by customer")
	ErrInvoiceMissingCustomer = errors.New("invoice customer name is missing")
	ErrInvoiceEmptyTotal      = errors.New("invoice total must be positive")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
