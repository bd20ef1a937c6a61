// Package pricing turns cart selections into priced line items.
package pricing

import (
	"cmp"
	"context"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

// DefaultCurrency is reported for an empty cart.
const DefaultCurrency = "GBP"

// Catalog is the read side of the catalog needed for pricing.
type Catalog interface {
	SkusByIDs(ctx context.Context, ids []string) ([]model.SKU, error)
	OffersBySkuIDs(ctx context.Context, ids []string) ([]model.BulkPricingOffer, error)
}

// Engine prices carts against the current catalog.
type Engine struct {
	catalog Catalog
}

// NewEngine constructs a pricing engine.
func NewEngine(c Catalog) *Engine { return &Engine{catalog: c} }

// ComputeTotals returns one charge line per cart line, in cart order, followed
// by one discount line per (cart line, matching offer). All lines must share a
// currency. An empty cart prices to an empty slice.
func (e *Engine) ComputeTotals(ctx context.Context, cart []model.CartLine) ([]model.LineItem, error) {
	if len(cart) == 0 {
		return []model.LineItem{}, nil
	}
	skuIDs := make([]string, 0, len(cart))
	for i, l := range cart {
		if l.SkuID == "" {
			return nil, errs.Validationf("cart line %d: sku id is required", i)
		}
		if l.Quantity <= 0 {
			return nil, errs.Validationf("cart line %d: quantity must be positive", i)
		}
		if !slices.Contains(skuIDs, l.SkuID) {
			skuIDs = append(skuIDs, l.SkuID)
		}
	}

	var (
		skus   []model.SKU
		offers []model.BulkPricingOffer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		skus, err = e.catalog.SkusByIDs(gctx, skuIDs)
		return err
	})
	g.Go(func() (err error) {
		offers, err = e.catalog.OffersBySkuIDs(gctx, skuIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bySku := make(map[string]model.SKU, len(skus))
	for _, s := range skus {
		bySku[s.ID] = s
	}
	slices.SortStableFunc(offers, func(a, b model.BulkPricingOffer) int {
		return cmp.Or(cmp.Compare(a.MinQuantity, b.MinQuantity), cmp.Compare(a.ID, b.ID))
	})

	charges := make([]model.LineItem, 0, len(cart))
	for _, l := range cart {
		s, ok := bySku[l.SkuID]
		if !ok {
			return nil, errs.New(errs.KindNotFound, "SkuNotFound", "a cart item refers to an unknown sku").
				With("skuId", l.SkuID)
		}
		charges = append(charges, model.LineItem{
			SkuID:      s.ID,
			SkuName:    s.Name,
			SkuCode:    s.Code,
			Type:       model.LineCharge,
			Quantity:   l.Quantity,
			UnitPrice:  s.UnitPrice,
			TotalPrice: s.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)),
			Currency:   s.Currency,
		})
	}

	if err := CheckCurrency(charges); err != nil {
		return nil, err
	}

	out := charges
	for _, c := range charges {
		for _, o := range offers {
			if o.SkuID != c.SkuID || !o.Applies(c.Quantity) {
				continue
			}
			discount := c.TotalPrice.Mul(o.DiscountRate).Neg()
			out = append(out, model.LineItem{
				SkuID:               c.SkuID,
				SkuName:             c.SkuName,
				Type:                model.LineDiscount,
				Quantity:            1,
				UnitPrice:           discount,
				TotalPrice:          discount,
				Currency:            c.Currency,
				AppliedOfferID:      o.ID,
				AppliedDiscountRate: o.DiscountRate,
			})
		}
	}
	return out, nil
}

// CheckCurrency fails with a Cart error when lines carry more than one currency.
func CheckCurrency(lines []model.LineItem) error {
	for _, l := range lines[min(1, len(lines)):] {
		if l.Currency != lines[0].Currency {
			return errs.New(errs.KindCart, "InconsistentCurrency",
				"Some items in your cart are priced in different currencies.").
				With("currency", lines[0].Currency).
				With("otherCurrency", l.Currency)
		}
	}
	return nil
}

// Totals sums the lines and reports their currency, DefaultCurrency when empty.
func Totals(lines []model.LineItem) (decimal.Decimal, string) {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	if len(lines) == 0 {
		return total, DefaultCurrency
	}
	return total, lines[0].Currency
}

// MinorUnits converts an amount to integer minor units (pence, cents),
// rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
