package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

// AccountRepository is the in-memory account set. Balances mutate only
// through Adjust; the money actions keep them consistent with the ledger.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRepository creates an account set seeded with the given
// accounts.
func NewAccountRepository(seed []*domain.Account) *AccountRepository {
	repo := &AccountRepository{accounts: make(map[string]*domain.Account, len(seed))}
	for _, a := range seed {
		cp := *a
		repo.accounts[a.ID] = &cp
		repo.order = append(repo.order, a.ID)
	}
	return repo
}

// GetByID returns a copy of the account.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAccount, id)
	}

	cp := *acc
	return &cp, nil
}

// Adjust adds a signed delta to the stored balance and returns the result.
// Balances may go negative; there is deliberately no overdraft check.
func (r *AccountRepository) Adjust(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnknownAccount, id)
	}

	acc.Balance = acc.ApplyDelta(delta)
	return acc.Balance, nil
}

// List returns copies of all accounts in seed order.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Account, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.accounts[id]
		out = append(out, &cp)
	}
	return out, nil
}

// TotalByCurrency sums balances of the accounts in the given currency;
// zero when none match.
func (r *AccountRepository) TotalByCurrency(ctx context.Context, currency string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, acc := range r.accounts {
		if acc.Currency == currency {
			total = total.Add(acc.Balance)
		}
	}
	return total, nil
}
