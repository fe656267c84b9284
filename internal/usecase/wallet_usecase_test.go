package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/usecase"
	"github.com/smartmoney/walletd/internal/usecase/mocks"
)

func newWalletFixture() (*usecase.WalletUseCase, *mocks.MockAccountRepository, *mocks.MockLedgerRepository) {
	accounts := mocks.NewMockAccountRepository(
		&domain.Account{ID: "ACC-1", DisplayName: "Main (SAR)", Currency: "SAR", Balance: decimal.NewFromFloat(4320.75)},
		&domain.Account{ID: "ACC-2", DisplayName: "USD Wallet", Currency: "USD", Balance: decimal.NewFromFloat(820.00)},
	)
	ledger := mocks.NewMockLedgerRepository()
	return usecase.NewWalletUseCase(accounts, ledger), accounts, ledger
}

func TestWalletUseCase_Deposit(t *testing.T) {
	uc, accounts, _ := newWalletFixture()
	ctx := context.Background()

	record, err := uc.Deposit(ctx, decimal.NewFromInt(1200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	acc, _ := accounts.GetByID(ctx, "ACC-1")
	if acc.Balance.String() != "5520.75" {
		t.Errorf("expected balance 5520.75, got %s", acc.Balance)
	}

	if !record.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected record amount +1200, got %s", record.Amount)
	}

	if record.Category != domain.CategoryDeposit {
		t.Errorf("expected deposit category, got %s", record.Category)
	}

	head, _ := uc.Records(ctx)
	if len(head) != 1 || head[0].ID != record.ID {
		t.Error("expected deposit record at the ledger head")
	}
}

func TestWalletUseCase_RejectsNonPositiveAmounts(t *testing.T) {
	actions := []struct {
		name string
		call func(uc *usecase.WalletUseCase, ctx context.Context, amount decimal.Decimal) (*domain.Record, error)
	}{
		{"deposit", func(uc *usecase.WalletUseCase, ctx context.Context, a decimal.Decimal) (*domain.Record, error) {
			return uc.Deposit(ctx, a)
		}},
		{"withdraw", func(uc *usecase.WalletUseCase, ctx context.Context, a decimal.Decimal) (*domain.Record, error) {
			return uc.Withdraw(ctx, a)
		}},
		{"purchase", func(uc *usecase.WalletUseCase, ctx context.Context, a decimal.Decimal) (*domain.Record, error) {
			return uc.Purchase(ctx, "Groceries", a)
		}},
		{"transfer", func(uc *usecase.WalletUseCase, ctx context.Context, a decimal.Decimal) (*domain.Record, error) {
			return uc.Transfer(ctx, a)
		}},
		{"p2p", func(uc *usecase.WalletUseCase, ctx context.Context, a decimal.Decimal) (*domain.Record, error) {
			return uc.SendP2P(ctx, "@ahmed", a)
		}},
	}

	for _, action := range actions {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
			t.Run(action.name+" "+amount.String(), func(t *testing.T) {
				uc, accounts, _ := newWalletFixture()
				ctx := context.Background()

				_, err := action.call(uc, ctx, amount)
				if !errors.Is(err, domain.ErrInvalidAmount) {
					t.Fatalf("expected ErrInvalidAmount, got %v", err)
				}

				acc, _ := accounts.GetByID(ctx, "ACC-1")
				if acc.Balance.String() != "4320.75" {
					t.Errorf("expected balance untouched, got %s", acc.Balance)
				}

				records, _ := uc.Records(ctx)
				if len(records) != 0 {
					t.Errorf("expected no ledger append, got %d records", len(records))
				}
			})
		}
	}
}

func TestWalletUseCase_Withdraw(t *testing.T) {
	uc, accounts, _ := newWalletFixture()
	ctx := context.Background()

	record, err := uc.Withdraw(ctx, decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !record.Amount.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("expected record amount -200, got %s", record.Amount)
	}

	acc, _ := accounts.GetByID(ctx, "ACC-1")
	if acc.Balance.String() != "4120.75" {
		t.Errorf("expected balance 4120.75, got %s", acc.Balance)
	}
}

func TestWalletUseCase_Purchase(t *testing.T) {
	uc, _, _ := newWalletFixture()

	record, err := uc.Purchase(context.Background(), "Groceries", decimal.NewFromInt(75))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Description != "Purchase: Groceries" {
		t.Errorf("unexpected description %q", record.Description)
	}

	if record.Category != domain.CategoryPurchase {
		t.Errorf("expected purchase category, got %s", record.Category)
	}
}

func TestWalletUseCase_TransferIsSingleSided(t *testing.T) {
	uc, accounts, _ := newWalletFixture()
	ctx := context.Background()

	record, err := uc.Transfer(ctx, decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !record.Amount.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("expected -500, got %s", record.Amount)
	}

	source, _ := accounts.GetByID(ctx, "ACC-1")
	if source.Balance.String() != "3820.75" {
		t.Errorf("expected source debited to 3820.75, got %s", source.Balance)
	}

	// The observed behavior never credits a destination.
	dest, _ := accounts.GetByID(ctx, "ACC-2")
	if dest.Balance.String() != "820" {
		t.Errorf("expected destination untouched, got %s", dest.Balance)
	}
}

func TestWalletUseCase_SendP2P(t *testing.T) {
	uc, _, _ := newWalletFixture()
	ctx := context.Background()

	if _, err := uc.SendP2P(ctx, "", decimal.NewFromInt(100)); !errors.Is(err, domain.ErrEmptyRecipient) {
		t.Fatalf("expected ErrEmptyRecipient, got %v", err)
	}

	record, err := uc.SendP2P(ctx, "@ahmed", decimal.NewFromInt(150))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.Description != "P2P → @ahmed" {
		t.Errorf("expected recipient embedded in description, got %q", record.Description)
	}
}

func TestWalletUseCase_PayVendorAmountRange(t *testing.T) {
	uc, _, _ := newWalletFixture()
	ctx := context.Background()

	low := decimal.NewFromInt(150)
	high := decimal.NewFromInt(350)

	for i := 0; i < 1000; i++ {
		record, err := uc.PayVendor(ctx, "Electricity Bills")
		if err != nil {
			t.Fatalf("unexpected error on draw %d: %v", i, err)
		}

		amount := record.Amount.Abs()
		if amount.LessThan(low) || amount.GreaterThan(high) {
			t.Fatalf("draw %d out of range [150, 350]: %s", i, amount)
		}
	}
}

func TestWalletUseCase_UnknownPrimaryAccount(t *testing.T) {
	accounts := mocks.NewMockAccountRepository() // no ACC-1
	ledger := mocks.NewMockLedgerRepository()
	uc := usecase.NewWalletUseCase(accounts, ledger)
	ctx := context.Background()

	_, err := uc.Deposit(ctx, decimal.NewFromInt(100))
	if !errors.Is(err, domain.ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount, got %v", err)
	}

	records, _ := ledger.All(ctx)
	if len(records) != 0 {
		t.Error("expected no ledger append when the adjust fails")
	}
}

func TestWalletUseCase_TotalByCurrency(t *testing.T) {
	uc, _, _ := newWalletFixture()
	ctx := context.Background()

	total, err := uc.TotalByCurrency(ctx, "SAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total.String() != "4320.75" {
		t.Errorf("expected SAR total 4320.75, got %s", total)
	}

	for _, currency := range []string{"EUR", "", "sar gold"} {
		if _, err := uc.TotalByCurrency(ctx, currency); !errors.Is(err, domain.ErrInvalidCurrency) {
			t.Errorf("expected ErrInvalidCurrency for %q, got %v", currency, err)
		}
	}
}
