package service

import (
	"context"

	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/repository"
)

// CatalogService exposes SKUs with their bulk offers.
type CatalogService struct {
	catalog repository.CatalogRepository
	authz   *policy.Authorizer
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(catalog repository.CatalogRepository, authz *policy.Authorizer) *CatalogService {
	return &CatalogService{catalog: catalog, authz: authz}
}

// ListSkus returns the public catalogue.
func (c *CatalogService) ListSkus(ctx context.Context) ([]model.SKUWithOffers, error) {
	return c.catalog.ListWithOffers(ctx)
}

// GetSku returns one SKU to a license manager of orgID.
func (c *CatalogService) GetSku(ctx context.Context, s *model.Session, orgID, skuID string) (*model.SKUWithOffers, error) {
	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	if err := c.authz.Require(ctx, su.UserID, model.OrganisationRef(orgID), model.ActionManageLicenses); err != nil {
		return nil, err
	}
	return c.catalog.GetWithOffers(ctx, skuID)
}
