// Package mocks provides hand-rolled test doubles for the usecase
// interfaces. Each method delegates to an optional Func field and falls
// back to a simple in-memory behavior.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/usecase"
)

// MockLedgerRepository is a mock implementation of LedgerRepository.
type MockLedgerRepository struct {
	mu      sync.RWMutex
	records []domain.Record
	nextID  int

	AppendFunc func(ctx context.Context, record domain.Record) (*domain.Record, error)
	AllFunc    func(ctx context.Context) ([]*domain.Record, error)
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{}
}

func (m *MockLedgerRepository) Append(ctx context.Context, record domain.Record) (*domain.Record, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	record.ID = fmt.Sprintf("REC-%d", m.nextID)
	record.Timestamp = time.Now().UTC()
	m.records = append(m.records, record)
	stored := record
	return &stored, nil
}

func (m *MockLedgerRepository) All(ctx context.Context) ([]*domain.Record, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Record, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0; i-- {
		rec := m.records[i]
		out = append(out, &rec)
	}
	return out, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	GetByIDFunc         func(ctx context.Context, id string) (*domain.Account, error)
	AdjustFunc          func(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
	ListFunc            func(ctx context.Context) ([]*domain.Account, error)
	TotalByCurrencyFunc func(ctx context.Context, currency string) (decimal.Decimal, error)
}

func NewMockAccountRepository(seed ...*domain.Account) *MockAccountRepository {
	m := &MockAccountRepository{accounts: make(map[string]*domain.Account)}
	for _, a := range seed {
		cp := *a
		m.accounts[a.ID] = &cp
	}
	return m
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	acc, ok := m.accounts[id]
	if !ok {
		return nil, domain.ErrUnknownAccount
	}
	cp := *acc
	return &cp, nil
}

func (m *MockAccountRepository) Adjust(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	if m.AdjustFunc != nil {
		return m.AdjustFunc(ctx, id, delta)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return decimal.Zero, domain.ErrUnknownAccount
	}
	acc.Balance = acc.Balance.Add(delta)
	return acc.Balance, nil
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		cp := *acc
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MockAccountRepository) TotalByCurrency(ctx context.Context, currency string) (decimal.Decimal, error) {
	if m.TotalByCurrencyFunc != nil {
		return m.TotalByCurrencyFunc(ctx, currency)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, acc := range m.accounts {
		if acc.Currency == currency {
			total = total.Add(acc.Balance)
		}
	}
	return total, nil
}

// MockNotifier records every sent notification.
type MockNotifier struct {
	mu   sync.Mutex
	Sent []usecase.Notification

	SendFunc func(ctx context.Context, n usecase.Notification) error
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(ctx context.Context, n usecase.Notification) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, n)
	return nil
}

// MockIDGenerator generates sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("ID-%d", m.next)
}
