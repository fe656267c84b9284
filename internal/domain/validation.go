package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidCurrency = errors.New("invalid currency code")

// Supported currency codes. The set is deliberately closed: the app only
// moves SAR and holds a USD side wallet.
var validCurrencies = map[string]bool{
	"SAR": true,
	"USD": true,
}

// USDToSAR is the hardcoded display rate. It is not a conversion engine;
// it only scales USD figures for SAR presentation.
var USDToSAR = decimal.NewFromFloat(3.75)

// ValidateCurrency validates a currency code against the supported set.
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAmount rejects non-positive amounts for money-moving actions.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateRecipient rejects empty P2P handles.
func ValidateRecipient(handle string) error {
	if strings.TrimSpace(handle) == "" {
		return ErrEmptyRecipient
	}
	return nil
}
