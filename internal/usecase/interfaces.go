package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/smartmoney/walletd/internal/domain"
)

// LedgerRepository is the append-only record store. Append assigns the ID
// and timestamp and always succeeds; existing records are never touched.
type LedgerRepository interface {
	Append(ctx context.Context, record domain.Record) (*domain.Record, error)
	All(ctx context.Context) ([]*domain.Record, error)
}

// AccountRepository is the account set: balances kept in lockstep with the
// ledger by the money actions.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Adjust(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error)
	List(ctx context.Context) ([]*domain.Account, error)
	TotalByCurrency(ctx context.Context, currency string) (decimal.Decimal, error)
}

// InventoryRepository stores the technician app's stocked items.
type InventoryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	List(ctx context.Context) ([]*domain.InventoryItem, error)
}

// ReplenishmentRepository is the ledger-like list of replenishment requests.
// Append assigns the code and timestamp.
type ReplenishmentRepository interface {
	Append(ctx context.Context, request domain.ReplenishmentRequest) (*domain.ReplenishmentRequest, error)
	All(ctx context.Context) ([]*domain.ReplenishmentRequest, error)
}

// VendorRepository lists the payable vendor directory.
type VendorRepository interface {
	List(ctx context.Context) ([]*domain.Vendor, error)
}

// CryptoRepository lists the read-only digital asset holdings.
type CryptoRepository interface {
	List(ctx context.Context) ([]*domain.CryptoAsset, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Notification is one message to a recipient of the invoice fan-out.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers invoice notifications. Actual delivery is out of scope;
// implementations may simply log.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
