package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/pricing"
	"github.com/and161185/carder/internal/session"
)

// CartView is a priced cart together with the checkout token bound to it.
type CartView struct {
	Lines    []model.LineItem
	Total    decimal.Decimal
	Currency string
	UIC      string
}

// SetItemResult is the cart after an edit. BuyNowUIC is set only when the
// cart was replaced by a single item.
type SetItemResult struct {
	Lines     []model.CartLine
	BuyNowUIC string
}

// CartService edits and prices the session cart.
type CartService struct {
	engine   *pricing.Engine
	catalog  pricing.Catalog
	sessions *session.Manager
}

// NewCartService constructs a CartService.
func NewCartService(engine *pricing.Engine, catalog pricing.Catalog, sessions *session.Manager) *CartService {
	return &CartService{engine: engine, catalog: catalog, sessions: sessions}
}

// GetCart prices the cart and replaces any checkout token with one bound to
// the fresh total.
func (c *CartService) GetCart(ctx context.Context, s *model.Session) (*CartView, error) {
	lines, err := c.engine.ComputeTotals(ctx, s.Cart.Lines)
	if err != nil {
		return nil, err
	}
	total, currency := pricing.Totals(lines)

	s.DropIntent(model.IntentCheckout)
	tok, err := c.sessions.IssueUIC(s, model.UIC{Intent: model.IntentCheckout, Total: &total, Currency: currency})
	if err != nil {
		return nil, err
	}
	return &CartView{Lines: lines, Total: total, Currency: currency, UIC: tok}, nil
}

// SetItem sets the quantity of skuID; zero removes it. With removeAllOthers
// the cart becomes just this item and a buy-now token is issued.
func (c *CartService) SetItem(ctx context.Context, s *model.Session, skuID string, quantity int64, removeAllOthers bool) (*SetItemResult, error) {
	if skuID == "" {
		return nil, errs.Validationf("sku id is required")
	}
	if quantity < 0 {
		return nil, errs.Validationf("quantity must not be negative")
	}
	if quantity > 0 {
		found, err := c.catalog.SkusByIDs(ctx, []string{skuID})
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, errs.New(errs.KindNotFound, "SkuNotFound", "sku not found").With("skuId", skuID)
		}
	}

	res := &SetItemResult{}
	if removeAllOthers {
		if quantity == 0 {
			return nil, errs.Validationf("buy now needs a positive quantity")
		}
		s.Cart.Lines = []model.CartLine{{SkuID: skuID, Quantity: quantity}}
		tok, err := c.sessions.IssueUIC(s, model.UIC{Intent: model.IntentBuyNow, Quantity: quantity, Currency: pricing.DefaultCurrency})
		if err != nil {
			return nil, err
		}
		res.BuyNowUIC = tok
	} else {
		s.Cart.Set(skuID, quantity)
	}
	res.Lines = s.Cart.Lines
	return res, nil
}

// Clear empties the cart.
func (c *CartService) Clear(s *model.Session) {
	s.Cart.Lines = []model.CartLine{}
}
