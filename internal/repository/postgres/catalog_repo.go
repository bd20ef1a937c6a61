package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

// CatalogRepo implements CatalogRepository using PostgreSQL.
type CatalogRepo struct{ db *DB }

// NewCatalogRepo constructs a catalog repository.
func NewCatalogRepo(db *DB) *CatalogRepo { return &CatalogRepo{db: db} }

// SkusByIDs returns the SKUs among ids that exist.
func (r *CatalogRepo) SkusByIDs(ctx context.Context, ids []string) ([]model.SKU, error) {
	const q = `
SELECT id, code, name, description, unit_price, unit_price_currency
FROM skus WHERE id = ANY($1)`
	rows, err := r.db.Pool.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SKU
	for rows.Next() {
		var (
			s     model.SKU
			price string
		)
		if err = rows.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &price, &s.Currency); err != nil {
			return nil, err
		}
		if s.UnitPrice, err = parseMoney(price, "sku "+s.ID+" unit_price"); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// OffersBySkuIDs returns every bulk offer attached to one of ids.
func (r *CatalogRepo) OffersBySkuIDs(ctx context.Context, ids []string) ([]model.BulkPricingOffer, error) {
	const q = `
SELECT id, sku_id, min_quantity, max_quantity, discount_rate
FROM bulk_pricing_offers WHERE sku_id = ANY($1)
ORDER BY sku_id, min_quantity`
	rows, err := r.db.Pool.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BulkPricingOffer
	for rows.Next() {
		var (
			o    model.BulkPricingOffer
			rate string
		)
		if err = rows.Scan(&o.ID, &o.SkuID, &o.MinQuantity, &o.MaxQuantity, &rate); err != nil {
			return nil, err
		}
		if o.DiscountRate, err = parseMoney(rate, "offer "+o.ID+" discount_rate"); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

const selectSkuWithOffers = `
SELECT s.id, s.code, s.name, s.description, s.unit_price, s.unit_price_currency,
       o.id, o.min_quantity, o.max_quantity, o.discount_rate
FROM skus s LEFT JOIN bulk_pricing_offers o ON o.sku_id = s.id`

// ListWithOffers returns one entry per SKU with its offers collected.
func (r *CatalogRepo) ListWithOffers(ctx context.Context) ([]model.SKUWithOffers, error) {
	rows, err := r.db.Pool.Query(ctx, selectSkuWithOffers+" ORDER BY s.id, o.min_quantity")
	if err != nil {
		return nil, err
	}
	return aggregateSkus(rows)
}

// GetWithOffers returns one SKU with its offers.
func (r *CatalogRepo) GetWithOffers(ctx context.Context, id string) (*model.SKUWithOffers, error) {
	rows, err := r.db.Pool.Query(ctx, selectSkuWithOffers+" WHERE s.id=$1 ORDER BY o.min_quantity", id)
	if err != nil {
		return nil, err
	}
	out, err := aggregateSkus(rows)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("sku %s: %w", id, errs.ErrNotFound)
	}
	return &out[0], nil
}

// aggregateSkus folds joined rows, ordered by sku id, into one entry per SKU.
func aggregateSkus(rows pgx.Rows) ([]model.SKUWithOffers, error) {
	defer rows.Close()

	var out []model.SKUWithOffers
	for rows.Next() {
		var (
			s              model.SKU
			price          string
			offerID, rate  *string
			minQty, maxQty *int64
		)
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Description, &price, &s.Currency,
			&offerID, &minQty, &maxQty, &rate); err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1].ID != s.ID {
			p, err := parseMoney(price, "sku "+s.ID+" unit_price")
			if err != nil {
				return nil, err
			}
			s.UnitPrice = p
			out = append(out, model.SKUWithOffers{SKU: s, Offers: []model.BulkPricingOffer{}})
		}
		if offerID == nil {
			continue
		}
		d, err := parseMoney(deref(rate), "offer "+*offerID+" discount_rate")
		if err != nil {
			return nil, err
		}
		cur := &out[len(out)-1]
		cur.Offers = append(cur.Offers, model.BulkPricingOffer{
			ID:           *offerID,
			SkuID:        s.ID,
			MinQuantity:  *minQty,
			MaxQuantity:  *maxQty,
			DiscountRate: d,
		})
	}
	return out, rows.Err()
}
