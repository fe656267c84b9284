package session

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

// Every session starts from the same demo snapshot: two funded accounts,
// a short transaction history, the vendor directory, the technician stock
// list and the crypto holdings.

func seedAccounts() []*domain.Account {
	return []*domain.Account{
		{ID: "ACC-1", DisplayName: "Main (SAR)", IBAN: "SA03 8000 1234 5678", Currency: "SAR", Balance: decimal.NewFromFloat(4320.75)},
		{ID: "ACC-2", DisplayName: "USD Wallet", IBAN: "US12 **** 9988", Currency: "USD", Balance: decimal.NewFromFloat(820.00)},
	}
}

func seedRecords() []domain.Record {
	day := func(d int) time.Time {
		return time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC)
	}

	return []domain.Record{
		{ID: "TX-1002", Timestamp: day(4), Description: "Cash Deposit", Amount: decimal.NewFromInt(1200), Currency: "SAR", Category: domain.CategoryDeposit},
		{ID: "TX-1003", Timestamp: day(6), Description: "Transfer to USD", Amount: decimal.NewFromInt(-500), Currency: "SAR", Category: domain.CategoryTransfer},
		{ID: "TX-1004", Timestamp: day(6), Description: "FX SAR→USD", Amount: decimal.NewFromFloat(133.0), Currency: "USD", Category: domain.CategoryFX},
		{ID: "TX-1005", Timestamp: day(7), Description: "Coffee", Amount: decimal.NewFromInt(-18), Currency: "SAR", Category: domain.CategoryPurchase},
		{ID: "TX-1006", Timestamp: day(8), Description: "Gym Membership", Amount: decimal.NewFromInt(-120), Currency: "SAR", Category: domain.CategorySubscription},
	}
}

func seedVendors() []*domain.Vendor {
	return []*domain.Vendor{
		{ID: "V1", Name: "Electricity Bills"},
		{ID: "V2", Name: "Telecom Co."},
	}
}

func seedInventory() []*domain.InventoryItem {
	return []*domain.InventoryItem{
		{ID: "ITEM-1", Name: "Air filter", Unit: "pcs", QuantityOnHand: decimal.NewFromInt(24), ReorderThreshold: decimal.NewFromInt(6)},
		{ID: "ITEM-2", Name: "Copper pipe", Unit: "m", QuantityOnHand: decimal.NewFromInt(50), ReorderThreshold: decimal.NewFromInt(10)},
		{ID: "ITEM-3", Name: "Refrigerant R410A", Unit: "kg", QuantityOnHand: decimal.NewFromInt(12), ReorderThreshold: decimal.NewFromInt(4)},
	}
}

func seedCrypto() []*domain.CryptoAsset {
	return []*domain.CryptoAsset{
		{ID: "CR-1", Symbol: "BTC", Name: "Bitcoin", Amount: decimal.NewFromFloat(0.12), PriceUSD: decimal.NewFromInt(68000)},
		{ID: "CR-2", Symbol: "ETH", Name: "Ethereum", Amount: decimal.NewFromFloat(1.8), PriceUSD: decimal.NewFromInt(3600)},
		{ID: "CR-3", Symbol: "USDT", Name: "Tether", Amount: decimal.NewFromInt(1500), PriceUSD: decimal.NewFromInt(1)},
	}
}
