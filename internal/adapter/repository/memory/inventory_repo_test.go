package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

func TestInventoryRepository_GetUnknown(t *testing.T) {
	repo := NewInventoryRepository(nil)

	_, err := repo.GetByID(context.Background(), "ITEM-9")
	if !errors.Is(err, domain.ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}
}

func TestInventoryRepository_UpdateRoundTrip(t *testing.T) {
	repo := NewInventoryRepository([]*domain.InventoryItem{
		{ID: "ITEM-1", Name: "Air filter", Unit: "pcs", QuantityOnHand: decimal.NewFromInt(12)},
	})
	ctx := context.Background()

	item, err := repo.GetByID(ctx, "ITEM-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item.Consume(decimal.NewFromInt(5))
	if err := repo.Update(ctx, item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.GetByID(ctx, "ITEM-1")
	if !stored.QuantityOnHand.Equal(decimal.NewFromInt(7)) {
		t.Errorf("expected 7 on hand, got %s", stored.QuantityOnHand)
	}
}

func TestReplenishmentRepository_AppendAssignsCode(t *testing.T) {
	repo := NewReplenishmentRepository(NewULIDGenerator())
	ctx := context.Background()

	first, err := repo.Append(ctx, domain.ReplenishmentRequest{
		ItemID:           "ITEM-1",
		QuantityConsumed: decimal.NewFromInt(3),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(first.Code, "REQ-") {
		t.Errorf("expected REQ- prefix, got %q", first.Code)
	}

	if first.Timestamp.IsZero() {
		t.Error("expected assigned timestamp")
	}

	second, _ := repo.Append(ctx, domain.ReplenishmentRequest{ItemID: "ITEM-1", QuantityConsumed: decimal.NewFromInt(1)})
	if second.Code == first.Code {
		t.Error("request codes must be unique")
	}

	all, _ := repo.All(ctx)
	if len(all) != 2 || all[0].Code != second.Code {
		t.Errorf("expected newest first, got %+v", all)
	}
}
