package postgres

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/and161185/carder/internal/errs"
)

var skuOfferCols = []string{"id", "code", "name", "description", "unit_price", "unit_price_currency",
	"offer_id", "min_quantity", "max_quantity", "discount_rate"}

func i64(v int64) *int64 { return &v }

func TestCatalogRepo_SkusAndOffersByIDs(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCatalogRepo(db)
	ctx := context.Background()
	ids := []string{"S1", "S2"}

	mock.ExpectQuery(`FROM skus WHERE id = ANY\(\$1\)`).
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_price", "unit_price_currency"}).
			AddRow("S1", "full-pass", "Full pass", "", "100.00", "GBP"))
	skus, err := r.SkusByIDs(ctx, ids)
	require.NoError(t, err)
	require.Len(t, skus, 1)
	require.True(t, decimal.RequireFromString("100").Equal(skus[0].UnitPrice))

	mock.ExpectQuery(`FROM bulk_pricing_offers WHERE sku_id = ANY\(\$1\)`).
		WithArgs(ids).
		WillReturnRows(pgxmock.NewRows([]string{"id", "sku_id", "min_quantity", "max_quantity", "discount_rate"}).
			AddRow("B1", "S1", int64(10), int64(50), "0.10"))
	offers, err := r.OffersBySkuIDs(ctx, ids)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.True(t, offers[0].Applies(10))
	require.False(t, offers[0].Applies(50))
}

func TestCatalogRepo_SkusByIDs_BadPrice(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCatalogRepo(db)

	mock.ExpectQuery(`FROM skus WHERE id = ANY`).
		WithArgs([]string{"S1"}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_price", "unit_price_currency"}).
			AddRow("S1", "x", "X", "", "ten", "GBP"))
	_, err := r.SkusByIDs(context.Background(), []string{"S1"})
	require.Error(t, err)
}

func TestCatalogRepo_ListWithOffers_Aggregates(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCatalogRepo(db)

	mock.ExpectQuery(`FROM skus s LEFT JOIN bulk_pricing_offers o ON o.sku_id = s.id ORDER BY s.id, o.min_quantity`).
		WillReturnRows(pgxmock.NewRows(skuOfferCols).
			AddRow("S1", "full-pass", "Full pass", "", "100", "GBP", ptr("B1"), i64(10), i64(50), ptr("0.10")).
			AddRow("S1", "full-pass", "Full pass", "", "100", "GBP", ptr("B2"), i64(50), i64(1000), ptr("0.20")).
			AddRow("S2", "day-pass", "Day pass", "", "25", "GBP", (*string)(nil), (*int64)(nil), (*int64)(nil), (*string)(nil)))

	out, err := r.ListWithOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, out[0].Offers, 2)
	require.Equal(t, "B2", out[0].Offers[1].ID)
	require.Empty(t, out[1].Offers)
	require.NotNil(t, out[1].Offers)
}

func TestCatalogRepo_GetWithOffers_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCatalogRepo(db)

	mock.ExpectQuery(`WHERE s.id=\$1`).
		WithArgs("S404").
		WillReturnRows(pgxmock.NewRows(skuOfferCols))
	_, err := r.GetWithOffers(context.Background(), "S404")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
