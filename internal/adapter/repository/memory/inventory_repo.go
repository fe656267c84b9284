package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/smartmoney/walletd/internal/domain"
	"github.com/smartmoney/walletd/internal/usecase"
)

// InventoryRepository stores the stocked items of one session.
type InventoryRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.InventoryItem
	order []string
}

// NewInventoryRepository creates an inventory seeded with the given items.
func NewInventoryRepository(seed []*domain.InventoryItem) *InventoryRepository {
	repo := &InventoryRepository{items: make(map[string]*domain.InventoryItem, len(seed))}
	for _, item := range seed {
		cp := *item
		repo.items[item.ID] = &cp
		repo.order = append(repo.order, item.ID)
	}
	return repo
}

// GetByID returns a copy of the item.
func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownItem, id)
	}

	cp := *item
	return &cp, nil
}

// Update replaces a stored item.
func (r *InventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownItem, item.ID)
	}

	cp := *item
	r.items[item.ID] = &cp
	return nil
}

// List returns copies of all items in seed order.
func (r *InventoryRepository) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.InventoryItem, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

// ReplenishmentRepository is the append-only request list produced by stock
// consumption.
type ReplenishmentRepository struct {
	mu       sync.RWMutex
	requests []domain.ReplenishmentRequest
	idGen    usecase.IDGenerator
}

// NewReplenishmentRepository creates an empty request list.
func NewReplenishmentRepository(idGen usecase.IDGenerator) *ReplenishmentRepository {
	return &ReplenishmentRepository{idGen: idGen}
}

// Append assigns a fresh code and timestamp and stores the request.
func (r *ReplenishmentRepository) Append(ctx context.Context, request domain.ReplenishmentRequest) (*domain.ReplenishmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.Code = fmt.Sprintf("REQ-%s", r.idGen.Generate())
	request.Timestamp = time.Now().UTC()
	r.requests = append(r.requests, request)

	stored := request
	return &stored, nil
}

// All returns copies of every request, newest first.
func (r *ReplenishmentRepository) All(ctx context.Context) ([]*domain.ReplenishmentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.ReplenishmentRequest, 0, len(r.requests))
	for i := len(r.requests) - 1; i >= 0; i-- {
		req := r.requests[i]
		out = append(out, &req)
	}
	return out, nil
}
