// Package memory holds the in-memory stores backing a single session's
// view state. Each session owns its own set of repositories; nothing is
// shared across sessions and nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/usecase"
)

// LedgerRepository is an append-only, insertion-ordered record store.
type LedgerRepository struct {
	mu      sync.RWMutex
	records []domain.Record
	idGen   usecase.IDGenerator
}

// NewLedgerRepository creates a ledger seeded with the given records, oldest
// first. Seed records keep their IDs and timestamps as given.
func NewLedgerRepository(idGen usecase.IDGenerator, seed []domain.Record) *LedgerRepository {
	repo := &LedgerRepository{idGen: idGen}
	repo.records = append(repo.records, seed...)
	return repo
}

// Append assigns the ID and timestamp, stores the record, and returns the
// stored copy. The category must be one of the known set; a record from
// any wallet action always passes, and nothing ever touches earlier
// records.
func (r *LedgerRepository) Append(ctx context.Context, record domain.Record) (*domain.Record, error) {
	if !record.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = r.idGen.Generate()
	record.Timestamp = time.Now().UTC()
	r.records = append(r.records, record)

	stored := record
	return &stored, nil
}

// All returns copies of every record, newest first. Canonical order is
// insertion order; newest-first is derived here for display.
func (r *LedgerRepository) All(ctx context.Context) ([]*domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Record, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		out = append(out, &rec)
	}
	return out, nil
}
