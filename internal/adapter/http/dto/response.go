package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/usecase"
)

// SessionResponse describes a freshly opened session.
type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// RecordResponse represents a ledger record in API responses.
type RecordResponse struct {
	ID          string          `json:"id"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category,omitempty"`
}

// RecordFromDomain converts a domain record to a response.
func RecordFromDomain(r *domain.Record) *RecordResponse {
	return &RecordResponse{
		ID:          r.ID,
		Timestamp:   r.Timestamp,
		Description: r.Description,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Category:    string(r.Category),
	}
}

// RecordsFromDomain converts domain records to responses.
func RecordsFromDomain(records []*domain.Record) []*RecordResponse {
	out := make([]*RecordResponse, len(records))
	for i, r := range records {
		out[i] = RecordFromDomain(r)
	}
	return out
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"display_name"`
	IBAN        string          `json:"iban,omitempty"`
	Currency    string          `json:"currency"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		IBAN:        a.IBAN,
		Currency:    a.Currency,
		Balance:     a.Balance,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	out := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = AccountFromDomain(a)
	}
	return out
}

// SnapshotResponse is the wallet overview: accounts, per-currency totals
// and the recent ledger.
type SnapshotResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	TotalSAR decimal.Decimal    `json:"total_sar"`
	TotalUSD decimal.Decimal    `json:"total_usd"`
	Records  []*RecordResponse  `json:"records"`
}

// VendorResponse represents a vendor directory entry.
type VendorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VendorsFromDomain converts domain vendors to responses.
func VendorsFromDomain(vendors []*domain.Vendor) []*VendorResponse {
	out := make([]*VendorResponse, len(vendors))
	for i, v := range vendors {
		out[i] = &VendorResponse{ID: v.ID, Name: v.Name}
	}
	return out
}

// InventoryItemResponse represents a stocked item.
type InventoryItemResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Unit             string          `json:"unit"`
	QuantityOnHand   decimal.Decimal `json:"quantity_on_hand"`
	ReorderThreshold decimal.Decimal `json:"reorder_threshold"`
	NeedsReorder     bool            `json:"needs_reorder"`
}

// InventoryItemFromDomain converts a domain item to a response.
func InventoryItemFromDomain(item *domain.InventoryItem) *InventoryItemResponse {
	return &InventoryItemResponse{
		ID:               item.ID,
		Name:             item.Name,
		Unit:             item.Unit,
		QuantityOnHand:   item.QuantityOnHand,
		ReorderThreshold: item.ReorderThreshold,
		NeedsReorder:     item.NeedsReorder(),
	}
}

// InventoryItemsFromDomain converts domain items to responses.
func InventoryItemsFromDomain(items []*domain.InventoryItem) []*InventoryItemResponse {
	out := make([]*InventoryItemResponse, len(items))
	for i, item := range items {
		out[i] = InventoryItemFromDomain(item)
	}
	return out
}

// ReplenishmentResponse represents a generated replenishment request.
type ReplenishmentResponse struct {
	Code             string          `json:"code"`
	ItemID           string          `json:"item_id"`
	QuantityConsumed decimal.Decimal `json:"quantity_consumed"`
	Timestamp        time.Time       `json:"timestamp"`
}

// ReplenishmentFromDomain converts a domain request to a response.
func ReplenishmentFromDomain(r *domain.ReplenishmentRequest) *ReplenishmentResponse {
	return &ReplenishmentResponse{
		Code:             r.Code,
		ItemID:           r.ItemID,
		QuantityConsumed: r.QuantityConsumed,
		Timestamp:        r.Timestamp,
	}
}

// ReplenishmentsFromDomain converts domain requests to responses.
func ReplenishmentsFromDomain(requests []*domain.ReplenishmentRequest) []*ReplenishmentResponse {
	out := make([]*ReplenishmentResponse, len(requests))
	for i, r := range requests {
		out[i] = ReplenishmentFromDomain(r)
	}
	return out
}

// InvoiceResultResponse describes an accepted invoice submission.
type InvoiceResultResponse struct {
	Reference string          `json:"reference"`
	Total     decimal.Decimal `json:"total"`
	Notified  []string        `json:"notified"`
}

// InvoiceResultFromUseCase converts a submission result to a response.
func InvoiceResultFromUseCase(r *usecase.SubmitInvoiceResult) *InvoiceResultResponse {
	return &InvoiceResultResponse{
		Reference: r.Reference,
		Total:     r.Total,
		Notified:  r.Notified,
	}
}

// SummaryResponse represents the reports screen aggregates.
type SummaryResponse struct {
	Income          decimal.Decimal `json:"income"`
	Spend           decimal.Decimal `json:"spend"`
	Savings         decimal.Decimal `json:"savings"`
	BurnRatePercent int64           `json:"burn_rate_percent"`
	Currency        string          `json:"currency"`
}

// SummaryFromUseCase converts a summary to a response.
func SummaryFromUseCase(s *usecase.Summary) *SummaryResponse {
	return &SummaryResponse{
		Income:          s.Income,
		Spend:           s.Spend,
		Savings:         s.Savings,
		BurnRatePercent: s.BurnRatePercent,
		Currency:        s.Currency,
	}
}

// CryptoAssetResponse represents one digital asset holding.
type CryptoAssetResponse struct {
	ID       string          `json:"id"`
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	PriceUSD decimal.Decimal `json:"price_usd"`
	ValueUSD decimal.Decimal `json:"value_usd"`
	ValueSAR decimal.Decimal `json:"value_sar"`
}

// PortfolioResponse represents the digital assets wallet valuation.
type PortfolioResponse struct {
	Assets   []*CryptoAssetResponse `json:"assets"`
	TotalUSD decimal.Decimal        `json:"total_usd"`
	TotalSAR decimal.Decimal        `json:"total_sar"`
}

// PortfolioFromUseCase converts a portfolio to a response.
func PortfolioFromUseCase(p *usecase.Portfolio) *PortfolioResponse {
	assets := make([]*CryptoAssetResponse, len(p.Assets))
	for i, a := range p.Assets {
		assets[i] = &CryptoAssetResponse{
			ID:       a.ID,
			Symbol:   a.Symbol,
			Name:     a.Name,
			Amount:   a.Amount,
			PriceUSD: a.PriceUSD,
			ValueUSD: a.ValueUSD(),
			ValueSAR: a.ValueSAR(),
		}
	}

	return &PortfolioResponse{
		Assets:   assets,
		TotalUSD: p.TotalUSD,
		TotalSAR: p.TotalSAR,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
