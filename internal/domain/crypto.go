package domain

import "github.com/shopspring/decimal"

// CryptoAsset is a read-only holding in the digital assets wallet. Prices
// are demo figures; there are no mutating actions on the crypto side.
type CryptoAsset struct {
	ID       string
	Symbol   string
	Name     string
	Amount   decimal.Decimal
	PriceUSD decimal.Decimal
}

// ValueUSD is the holding amount times the quoted USD price.
func (a *CryptoAsset) ValueUSD() decimal.Decimal {
	return a.Amount.Mul(a.PriceUSD)
}

// ValueSAR converts the USD value at the fixed display rate.
func (a *CryptoAsset) ValueSAR() decimal.Decimal {
	return a.ValueUSD().Mul(USDToSAR)
}

// Vendor is an entry of the payable vendor directory.
type Vendor struct {
	ID   string
	Name string
}
