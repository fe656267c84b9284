package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

var one = decimal.NewFromInt(1)

// ReportUseCase computes read-side aggregates. Nothing is cached: the ledger
// is small and append-only, so every call recomputes from scratch.
type ReportUseCase struct {
	ledgerRepo LedgerRepository
	cryptoRepo CryptoRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(ledgerRepo LedgerRepository, cryptoRepo CryptoRepository) *ReportUseCase {
	return &ReportUseCase{
		ledgerRepo: ledgerRepo,
		cryptoRepo: cryptoRepo,
	}
}

// Summary aggregates the ledger for the reports screen.
type Summary struct {
	Income          decimal.Decimal
	Spend           decimal.Decimal
	Savings         decimal.Decimal
	BurnRatePercent int64
	Currency        string
}

// Summarize computes income, spend, savings and burn rate over the full
// ledger. Income counts every positive amount; spend counts absolute
// negative amounts in the reporting currency only.
func (uc *ReportUseCase) Summarize(ctx context.Context) (*Summary, error) {
	records, err := uc.ledgerRepo.All(ctx)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	spend := decimal.Zero

	for _, r := range records {
		switch {
		case r.Inflow():
			income = income.Add(r.Amount)
		case r.Amount.IsNegative() && r.Currency == ReportingCurrency:
			spend = spend.Add(r.Amount.Abs())
		}
	}

	savings := income.Sub(spend)
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	// The max(1, income+spend) floor guards the division on an empty ledger.
	denom := income.Add(spend)
	if denom.LessThan(one) {
		denom = one
	}

	burn := spend.Div(denom).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	return &Summary{
		Income:          income,
		Spend:           spend,
		Savings:         savings,
		BurnRatePercent: burn,
		Currency:        ReportingCurrency,
	}, nil
}

// Portfolio is the valuation of the digital assets wallet.
type Portfolio struct {
	Assets   []*domain.CryptoAsset
	TotalUSD decimal.Decimal
	TotalSAR decimal.Decimal
}

// CryptoPortfolio values the seeded holdings in USD and, at the fixed
// display rate, in SAR.
func (uc *ReportUseCase) CryptoPortfolio(ctx context.Context) (*Portfolio, error) {
	assets, err := uc.cryptoRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totalUSD := decimal.Zero
	for _, a := range assets {
		totalUSD = totalUSD.Add(a.ValueUSD())
	}

	return &Portfolio{
		Assets:   assets,
		TotalUSD: totalUSD,
		TotalSAR: totalUSD.Mul(domain.USDToSAR),
	}, nil
}
