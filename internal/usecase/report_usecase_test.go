package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/smartmoney/walletd/internal/adapter/repository/memory"
	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/usecase"
)

func seededReportUseCase(t *testing.T) *usecase.ReportUseCase {
	t.Helper()

	ledger := memory.NewLedgerRepository(memory.NewULIDGenerator(), []domain.Record{
		{ID: "TX-1002", Description: "Cash Deposit", Amount: decimal.NewFromInt(1200), Currency: "SAR", Category: domain.CategoryDeposit},
		{ID: "TX-1003", Description: "Transfer to USD", Amount: decimal.NewFromInt(-500), Currency: "SAR", Category: domain.CategoryTransfer},
		{ID: "TX-1004", Description: "FX SAR→USD", Amount: decimal.NewFromInt(133), Currency: "USD", Category: domain.CategoryFX},
		{ID: "TX-1005", Description: "Coffee", Amount: decimal.NewFromInt(-18), Currency: "SAR", Category: domain.CategoryPurchase},
		{ID: "TX-1006", Description: "Gym Membership", Amount: decimal.NewFromInt(-120), Currency: "SAR", Category: domain.CategorySubscription},
	})

	crypto := memory.NewCryptoRepository([]*domain.CryptoAsset{
		{ID: "CR-1", Symbol: "BTC", Name: "Bitcoin", Amount: decimal.NewFromFloat(0.5), PriceUSD: decimal.NewFromInt(68000)},
		{ID: "CR-2", Symbol: "USDT", Name: "Tether", Amount: decimal.NewFromInt(1000), PriceUSD: decimal.NewFromInt(1)},
	})

	return usecase.NewReportUseCase(ledger, crypto)
}

func TestReportUseCase_Summarize(t *testing.T) {
	uc := seededReportUseCase(t)

	summary, err := uc.Summarize(context.Background())
	require.NoError(t, err)

	// Income counts every positive amount regardless of currency; spend
	// filters on the reporting currency.
	require.Equal(t, "1333", summary.Income.String())
	require.Equal(t, "638", summary.Spend.String())
	require.Equal(t, "695", summary.Savings.String())
	require.EqualValues(t, 32, summary.BurnRatePercent)
	require.Equal(t, "SAR", summary.Currency)
}

func TestReportUseCase_SummarizeIsIdempotent(t *testing.T) {
	uc := seededReportUseCase(t)
	ctx := context.Background()

	first, err := uc.Summarize(ctx)
	require.NoError(t, err)

	second, err := uc.Summarize(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestReportUseCase_SummarizeEmptyLedger(t *testing.T) {
	ledger := memory.NewLedgerRepository(memory.NewULIDGenerator(), nil)
	uc := usecase.NewReportUseCase(ledger, memory.NewCryptoRepository(nil))

	summary, err := uc.Summarize(context.Background())
	require.NoError(t, err)

	// The max(1, income+spend) floor keeps the burn rate defined at zero.
	require.True(t, summary.Income.IsZero())
	require.True(t, summary.Spend.IsZero())
	require.True(t, summary.Savings.IsZero())
	require.EqualValues(t, 0, summary.BurnRatePercent)
}

func TestReportUseCase_SavingsFloorsAtZero(t *testing.T) {
	ledger := memory.NewLedgerRepository(memory.NewULIDGenerator(), []domain.Record{
		{ID: "TX-1", Amount: decimal.NewFromInt(100), Currency: "SAR", Category: domain.CategoryDeposit},
		{ID: "TX-2", Amount: decimal.NewFromInt(-900), Currency: "SAR", Category: domain.CategoryPurchase},
	})
	uc := usecase.NewReportUseCase(ledger, memory.NewCryptoRepository(nil))

	summary, err := uc.Summarize(context.Background())
	require.NoError(t, err)

	require.True(t, summary.Savings.IsZero())
	require.EqualValues(t, 90, summary.BurnRatePercent)
}

func TestReportUseCase_CryptoPortfolio(t *testing.T) {
	uc := seededReportUseCase(t)

	portfolio, err := uc.CryptoPortfolio(context.Background())
	require.NoError(t, err)

	require.Len(t, portfolio.Assets, 2)
	require.Equal(t, "35000", portfolio.TotalUSD.String())
	require.Equal(t, "131250", portfolio.TotalSAR.String())
}
