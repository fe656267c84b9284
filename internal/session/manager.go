// Package session gives every client its own wallet state. A session owns
// its ledger, account set, inventory and request list exclusively; nothing
// is shared across sessions and everything is gone when the session
// expires or the process stops.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartmoney/walletd/internal/adapter/repository/memory"
	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/infrastructure/metrics"
	"github.com/smartmoney/walletd/internal/usecase"
)

// Session bundles one client's view state and its use cases.
type Session struct {
	ID        string
	CreatedAt time.Time

	Wallet    *usecase.WalletUseCase
	Inventory *usecase.InventoryUseCase
	Invoice   *usecase.InvoiceUseCase
	Report    *usecase.ReportUseCase
	Vendors   usecase.VendorRepository

	lastSeen time.Time
}

// Manager creates, resolves and expires sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	notifier usecase.Notifier
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	ttl      time.Duration
}

// NewManager creates a session manager.
func NewManager(notifier usecase.Notifier, m *metrics.Metrics, logger zerolog.Logger, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		ttl:      ttl,
	}
}

// Open creates a fresh session seeded with the demo snapshot.
func (m *Manager) Open(ctx context.Context) *Session {
	idGen := memory.NewULIDGenerator()

	accountRepo := memory.NewAccountRepository(seedAccounts())
	ledgerRepo := memory.NewLedgerRepository(idGen, seedRecords())
	inventoryRepo := memory.NewInventoryRepository(seedInventory())
	requestRepo := memory.NewReplenishmentRepository(idGen)
	vendorRepo := memory.NewVendorRepository(seedVendors())
	cryptoRepo := memory.NewCryptoRepository(seedCrypto())

	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Wallet:    usecase.NewWalletUseCase(accountRepo, ledgerRepo),
		Inventory: usecase.NewInventoryUseCase(inventoryRepo, requestRepo),
		Invoice:   usecase.NewInvoiceUseCase(m.notifier, idGen),
		Report:    usecase.NewReportUseCase(ledgerRepo, cryptoRepo),
		Vendors:   vendorRepo,
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.SessionsOpened.Inc()
		m.metrics.ActiveSessions.Set(float64(count))
	}

	m.logger.Info().Str("session_id", s.ID).Msg("session opened")

	return s
}

// Get resolves a session by ID and refreshes its idle timer.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	s.lastSeen = time.Now().UTC()
	return s, nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep runs the idle-session expiry loop until the context is cancelled.
func (m *Manager) Sweep(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.expireIdle(time.Now().UTC())
		}
	}
}

func (m *Manager) expireIdle(now time.Time) {
	m.mu.Lock()
	var expired []string
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
			expired = append(expired, id)
		}
	}
	count := len(m.sessions)
	m.mu.Unlock()

	for _, id := range expired {
		m.logger.Info().Str("session_id", id).Msg("session expired")
		if m.metrics != nil {
			m.metrics.SessionsExpired.Inc()
		}
	}

	if m.metrics != nil {
		m.metrics.ActiveSessions.Set(float64(count))
	}
}
