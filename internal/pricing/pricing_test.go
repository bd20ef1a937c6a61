package pricing

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

type fakeCatalog struct {
	skus   []model.SKU
	offers []model.BulkPricingOffer
	err    error
	calls  atomic.Int32
}

func (f *fakeCatalog) SkusByIDs(_ context.Context, ids []string) ([]model.SKU, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	var out []model.SKU
	for _, s := range f.skus {
		if slices.Contains(ids, s.ID) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalog) OffersBySkuIDs(_ context.Context, ids []string) ([]model.BulkPricingOffer, error) {
	f.calls.Add(1)
	var out []model.BulkPricingOffer
	for _, o := range f.offers {
		if slices.Contains(ids, o.SkuID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sku(id, price, currency string) model.SKU {
	return model.SKU{ID: id, Code: "code-" + id, Name: "Sku " + id, UnitPrice: d(price), Currency: currency}
}

func offer(id, skuID string, minQ, maxQ int64, rate string) model.BulkPricingOffer {
	return model.BulkPricingOffer{ID: id, SkuID: skuID, MinQuantity: minQ, MaxQuantity: maxQ, DiscountRate: d(rate)}
}

func TestComputeTotals_ChargeAndBulkDiscount(t *testing.T) {
	cat := &fakeCatalog{
		skus:   []model.SKU{sku("A", "10", "GBP")},
		offers: []model.BulkPricingOffer{offer("B1", "A", 5, 10, "0.10")},
	}
	lines, err := NewEngine(cat).ComputeTotals(context.Background(), []model.CartLine{{SkuID: "A", Quantity: 5}})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.Equal(t, model.LineCharge, lines[0].Type)
	require.True(t, d("50").Equal(lines[0].TotalPrice))
	require.Equal(t, "code-A", lines[0].SkuCode)

	require.Equal(t, model.LineDiscount, lines[1].Type)
	require.True(t, d("-5").Equal(lines[1].TotalPrice))
	require.True(t, d("-5").Equal(lines[1].UnitPrice))
	require.Equal(t, int64(1), lines[1].Quantity)
	require.Equal(t, "B1", lines[1].AppliedOfferID)
	require.Empty(t, lines[1].SkuCode)

	total, cur := Totals(lines)
	require.True(t, d("45").Equal(total))
	require.Equal(t, "GBP", cur)
	require.Equal(t, int64(4500), MinorUnits(total))
}

func TestComputeTotals_OfferBoundaries(t *testing.T) {
	cat := &fakeCatalog{
		skus:   []model.SKU{sku("A", "10", "GBP")},
		offers: []model.BulkPricingOffer{offer("B1", "A", 5, 10, "0.10")},
	}
	e := NewEngine(cat)
	tests := []struct {
		qty       int64
		discounts int
	}{
		{4, 0},
		{5, 1},
		{9, 1},
		{10, 0},
	}
	for _, tt := range tests {
		lines, err := e.ComputeTotals(context.Background(), []model.CartLine{{SkuID: "A", Quantity: tt.qty}})
		require.NoError(t, err)
		require.Len(t, lines, 1+tt.discounts, "qty=%d", tt.qty)
	}
}

func TestComputeTotals_OverlappingOffersEachApply(t *testing.T) {
	cat := &fakeCatalog{
		skus: []model.SKU{sku("A", "20", "GBP"), sku("B", "3", "GBP")},
		offers: []model.BulkPricingOffer{
			offer("B2", "A", 2, 100, "0.05"),
			offer("B1", "A", 1, 10, "0.10"),
			offer("B3", "B", 1, 10, "0.50"),
		},
	}
	lines, err := NewEngine(cat).ComputeTotals(context.Background(), []model.CartLine{
		{SkuID: "A", Quantity: 3},
		{SkuID: "B", Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, lines, 5)
	require.Equal(t, []string{"", "", "B1", "B2", "B3"}, []string{
		lines[0].AppliedOfferID, lines[1].AppliedOfferID, lines[2].AppliedOfferID, lines[3].AppliedOfferID, lines[4].AppliedOfferID,
	})
	total, _ := Totals(lines)
	// 60 + 6 - 6 - 3 - 3
	require.True(t, d("54").Equal(total))
}

func TestComputeTotals_IsDeterministic(t *testing.T) {
	cat := &fakeCatalog{
		skus:   []model.SKU{sku("A", "12.34", "GBP"), sku("B", "0.99", "GBP")},
		offers: []model.BulkPricingOffer{offer("B1", "A", 2, 5, "0.15"), offer("B2", "B", 1, 3, "0.25")},
	}
	cart := []model.CartLine{{SkuID: "B", Quantity: 2}, {SkuID: "A", Quantity: 3}}
	e := NewEngine(cat)

	first, err := e.ComputeTotals(context.Background(), cart)
	require.NoError(t, err)
	second, err := e.ComputeTotals(context.Background(), cart)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestComputeTotals_InconsistentCurrency(t *testing.T) {
	cat := &fakeCatalog{skus: []model.SKU{sku("A", "10", "GBP"), sku("B", "10", "USD")}}
	_, err := NewEngine(cat).ComputeTotals(context.Background(), []model.CartLine{
		{SkuID: "A", Quantity: 1},
		{SkuID: "B", Quantity: 1},
	})
	require.ErrorIs(t, err, errs.ErrCart)
	var de *errs.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, "InconsistentCurrency", de.Code)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	cat := &fakeCatalog{}
	lines, err := NewEngine(cat).ComputeTotals(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, lines)
	require.Empty(t, lines)
	require.Zero(t, cat.calls.Load())

	total, cur := Totals(lines)
	require.True(t, total.IsZero())
	require.Equal(t, DefaultCurrency, cur)
	require.NoError(t, CheckCurrency(nil))
}

func TestComputeTotals_BadInput(t *testing.T) {
	cat := &fakeCatalog{skus: []model.SKU{sku("A", "10", "GBP")}}
	e := NewEngine(cat)
	ctx := context.Background()

	_, err := e.ComputeTotals(ctx, []model.CartLine{{SkuID: "A", Quantity: 0}})
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = e.ComputeTotals(ctx, []model.CartLine{{SkuID: "missing", Quantity: 1}})
	require.ErrorIs(t, err, errs.ErrNotFound)

	cat.err = errors.New("db down")
	_, err = e.ComputeTotals(ctx, []model.CartLine{{SkuID: "A", Quantity: 1}})
	require.EqualError(t, err, "db down")
}

func TestMinorUnits_Rounds(t *testing.T) {
	require.Equal(t, int64(1235), MinorUnits(d("12.345")))
	require.Equal(t, int64(-500), MinorUnits(d("-5")))
	require.Equal(t, int64(0), MinorUnits(decimal.Zero))
}
