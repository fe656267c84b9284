package memory

import (
	"context"

	"github.com/smartmoney/walletd/internal/domain"
)

// VendorRepository is the static vendor directory of one session.
type VendorRepository struct {
	vendors []*domain.Vendor
}

// NewVendorRepository creates a vendor directory from the seed list.
func NewVendorRepository(seed []*domain.Vendor) *VendorRepository {
	return &VendorRepository{vendors: seed}
}

// List returns copies of all vendors.
func (r *VendorRepository) List(ctx context.Context) ([]*domain.Vendor, error) {
	out := make([]*domain.Vendor, 0, len(r.vendors))
	for _, v := range r.vendors {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

// CryptoRepository holds the read-only digital asset seed.
type CryptoRepository struct {
	assets []*domain.CryptoAsset
}

// NewCryptoRepository creates a holdings list from the seed.
func NewCryptoRepository(seed []*domain.CryptoAsset) *CryptoRepository {
	return &CryptoRepository{assets: seed}
}

// List returns copies of all holdings.
func (r *CryptoRepository) List(ctx context.Context) ([]*domain.CryptoAsset, error) {
	out := make([]*domain.CryptoAsset, 0, len(r.assets))
	for _, a := range r.assets {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}
