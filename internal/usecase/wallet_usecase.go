package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

// WalletUseCase implements the money-moving action contract. Each action
// adjusts the account set and appends to the ledger as one unit: the
// adjustment is validated first, and the append cannot fail, so a rejected
// input leaves both untouched.
type WalletUseCase struct {
	accountRepo AccountRepository
	ledgerRepo  LedgerRepository
}

// NewWalletUseCase creates a new WalletUseCase.
func NewWalletUseCase(accountRepo AccountRepository, ledgerRepo LedgerRepository) *WalletUseCase {
	return &WalletUseCase{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Deposit credits the primary account.
func (uc *WalletUseCase) Deposit(ctx context.Context, amount decimal.Decimal) (*domain.Record, error) {
	return uc.move(ctx, amount, amount, "Cash Deposit", domain.CategoryDeposit)
}

// Withdraw debits the primary account.
func (uc *WalletUseCase) Withdraw(ctx context.Context, amount decimal.Decimal) (*domain.Record, error) {
	return uc.move(ctx, amount, amount.Neg(), "Cash Withdraw", domain.CategoryWithdraw)
}

// Purchase debits the primary account with a free-text description.
func (uc *WalletUseCase) Purchase(ctx context.Context, description string, amount decimal.Decimal) (*domain.Record, error) {
	return uc.move(ctx, amount, amount.Neg(), fmt.Sprintf("Purchase: %s", description), domain.CategoryPurchase)
}

// Transfer debits the source account. The observed behavior is single-sided:
// no matching credit is created on a destination account.
func (uc *WalletUseCase) Transfer(ctx context.Context, amount decimal.Decimal) (*domain.Record, error) {
	return uc.move(ctx, amount, amount.Neg(), "Internal Transfer", domain.CategoryTransfer)
}

// SendP2P debits the primary account with the recipient embedded in the
// description.
func (uc *WalletUseCase) SendP2P(ctx context.Context, recipient string, amount decimal.Decimal) (*domain.Record, error) {
	if err := domain.ValidateRecipient(recipient); err != nil {
		return nil, err
	}

	return uc.move(ctx, amount, amount.Neg(), fmt.Sprintf("P2P → %s", recipient), domain.CategoryP2P)
}

// PayVendor debits the primary account by a pseudo-random amount in
// [VendorAmountMin, VendorAmountMax], chosen at call time.
func (uc *WalletUseCase) PayVendor(ctx context.Context, vendorName string) (*domain.Record, error) {
	amount := decimal.NewFromInt(int64(VendorAmountMin + rand.Intn(VendorAmountMax-VendorAmountMin+1)))

	return uc.move(ctx, amount, amount.Neg(), fmt.Sprintf("Vendor: %s", vendorName), domain.CategoryVendor)
}

// Records returns the full ledger, newest first.
func (uc *WalletUseCase) Records(ctx context.Context) ([]*domain.Record, error) {
	return uc.ledgerRepo.All(ctx)
}

// Accounts returns the current account set.
func (uc *WalletUseCase) Accounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// TotalByCurrency sums the balances of all accounts in the given currency.
// The currency must be one of the supported codes.
func (uc *WalletUseCase) TotalByCurrency(ctx context.Context, currency string) (decimal.Decimal, error) {
	if err := domain.ValidateCurrency(currency); err != nil {
		return decimal.Zero, err
	}
	return uc.accountRepo.TotalByCurrency(ctx, currency)
}

func (uc *WalletUseCase) move(ctx context.Context, amount, delta decimal.Decimal, description string, category domain.Category) (*domain.Record, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	// The adjust is the only step that can fail; the append after it always
	// succeeds, which keeps account set and ledger consistent.
	if _, err := uc.accountRepo.Adjust(ctx, PrimaryAccountID, delta); err != nil {
		return nil, err
	}

	return uc.ledgerRepo.Append(ctx, domain.Record{
		Description: description,
		Amount:      delta,
		Currency:    ReportingCurrency,
		Category:    category,
	})
}
