package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

// InventoryUseCase handles stock consumption in the technician app.
type InventoryUseCase struct {
	inventoryRepo InventoryRepository
	requestRepo   ReplenishmentRepository
}

// NewInventoryUseCase creates a new InventoryUseCase.
func NewInventoryUseCase(inventoryRepo InventoryRepository, requestRepo ReplenishmentRepository) *InventoryUseCase {
	return &InventoryUseCase{
		inventoryRepo: inventoryRepo,
		requestRepo:   requestRepo,
	}
}

// Consume removes quantity from an item, clamping the on-hand count at zero,
// and appends a replenishment request with a freshly generated code. Unknown
// items and non-positive quantities are rejected with no request generated.
func (uc *InventoryUseCase) Consume(ctx context.Context, itemID string, quantity decimal.Decimal) (*domain.ReplenishmentRequest, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidQuantity
	}

	item, err := uc.inventoryRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Consume(quantity)

	if err := uc.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return uc.requestRepo.Append(ctx, domain.ReplenishmentRequest{
		ItemID:           item.ID,
		QuantityConsumed: quantity,
	})
}

// Items returns the current stock list.
func (uc *InventoryUseCase) Items(ctx context.Context) ([]*domain.InventoryItem, error) {
	return uc.inventoryRepo.List(ctx)
}

// Requests returns all replenishment requests, newest first.
func (uc *InventoryUseCase) Requests(ctx context.Context) ([]*domain.ReplenishmentRequest, error) {
	return uc.requestRepo.All(ctx)
}
