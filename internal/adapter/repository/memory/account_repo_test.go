package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

func seedAccounts() []*domain.Account {
	return []*domain.Account{
		{ID: "ACC-1", DisplayName: "Main (SAR)", Currency: "SAR", Balance: decimal.NewFromFloat(4320.75)},
		{ID: "ACC-2", DisplayName: "USD Wallet", Currency: "USD", Balance: decimal.NewFromFloat(820.00)},
	}
}

func TestAccountRepository_Adjust(t *testing.T) {
	tests := []struct {
		name        string
		accountID   string
		delta       decimal.Decimal
		wantBalance string
		wantErr     error
	}{
		{
			name:        "credit primary account",
			accountID:   "ACC-1",
			delta:       decimal.NewFromInt(1200),
			wantBalance: "5520.75",
		},
		{
			name:        "debit below zero is allowed",
			accountID:   "ACC-2",
			delta:       decimal.NewFromInt(-1000),
			wantBalance: "-180",
		},
		{
			name:      "unknown account",
			accountID: "ACC-9",
			delta:     decimal.NewFromInt(10),
			wantErr:   domain.ErrUnknownAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewAccountRepository(seedAccounts())

			balance, err := repo.Adjust(context.Background(), tt.accountID, tt.delta)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if balance.String() != tt.wantBalance {
				t.Errorf("expected balance %s, got %s", tt.wantBalance, balance)
			}
		})
	}
}

func TestAccountRepository_AdjustUnknownLeavesStateUntouched(t *testing.T) {
	repo := NewAccountRepository(seedAccounts())
	ctx := context.Background()

	if _, err := repo.Adjust(ctx, "ACC-9", decimal.NewFromInt(100)); err == nil {
		t.Fatal("expected error for unknown account")
	}

	total, err := repo.TotalByCurrency(ctx, "SAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if total.String() != "4320.75" {
		t.Errorf("expected balances untouched, got SAR total %s", total)
	}
}

func TestAccountRepository_TotalByCurrency(t *testing.T) {
	repo := NewAccountRepository(seedAccounts())
	ctx := context.Background()

	sar, err := repo.TotalByCurrency(ctx, "SAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sar.String() != "4320.75" {
		t.Errorf("expected 4320.75, got %s", sar)
	}

	eur, err := repo.TotalByCurrency(ctx, "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eur.IsZero() {
		t.Errorf("expected zero for unmatched currency, got %s", eur)
	}
}

func TestAccountRepository_ListReturnsCopies(t *testing.T) {
	repo := NewAccountRepository(seedAccounts())
	ctx := context.Background()

	accounts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(accounts) != 2 || accounts[0].ID != "ACC-1" {
		t.Fatalf("expected seed order, got %+v", accounts)
	}

	accounts[0].Balance = decimal.Zero

	fresh, _ := repo.GetByID(ctx, "ACC-1")
	if fresh.Balance.String() != "4320.75" {
		t.Error("accounts must not be mutable through List")
	}
}
