package usecase

const (
	// PrimaryAccountID is the SAR account every money action targets.
	PrimaryAccountID = "ACC-1"

	// ReportingCurrency is the currency spend aggregation filters on.
	ReportingCurrency = "SAR"

	// Vendor payments draw a pseudo-random amount in [VendorAmountMin,
	// VendorAmountMax], both inclusive. A demo stand-in for a billing lookup.
	VendorAmountMin = 150
	VendorAmountMax = 350
)

// InvoiceRecipients is the fixed notification set for accepted invoices.
var InvoiceRecipients = []string{"customer", "front-desk", "manager", "warehouse"}
