package repository

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

// CatalogRepository reads SKUs and bulk pricing offers.
type CatalogRepository interface {
	// SkusByIDs returns the SKUs among ids that exist.
	SkusByIDs(ctx context.Context, ids []string) ([]model.SKU, error)
	// OffersBySkuIDs returns every bulk offer attached to one of ids.
	OffersBySkuIDs(ctx context.Context, ids []string) ([]model.BulkPricingOffer, error)
	// ListWithOffers returns every SKU aggregated with its offers.
	ListWithOffers(ctx context.Context) ([]model.SKUWithOffers, error)
	// GetWithOffers returns one SKU aggregated with its offers.
	GetWithOffers(ctx context.Context, id string) (*model.SKUWithOffers, error)
}
