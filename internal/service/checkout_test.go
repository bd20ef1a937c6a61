package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// checkoutFixture prices a cart of 5 x A at 10 GBP with a 10% offer on [5,10).
func checkoutFixture(t *testing.T) (*harness, *model.Session) {
	t.Helper()
	h := newHarness(t)
	h.w.addSku("A", "VIP", "10.00", "GBP")
	h.w.addOffer("A", 5, 10, "0.10")
	s := h.licenseManager("O1")
	_, err := h.cart.SetItem(context.Background(), s, "A", 5, false)
	require.NoError(t, err)
	return h, s
}

func initiate(t *testing.T, h *harness, s *model.Session) *InitiateResult {
	t.Helper()
	ctx := context.Background()
	view, err := h.cart.GetCart(ctx, s)
	require.NoError(t, err)
	res, err := h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: view.UIC, Total: view.Total, Currency: view.Currency})
	require.NoError(t, err)
	return res
}

func pay(t *testing.T, h *harness, checkoutSessionID string) {
	t.Helper()
	cs, err := fakeOrders{h.w}.GetCheckoutSession(context.Background(), checkoutSessionID)
	require.NoError(t, err)
	_, err = h.pay.MarkPaid(cs.ProviderSessionID)
	require.NoError(t, err)
}

func TestCheckout_Initiate(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()

	view, err := h.cart.GetCart(ctx, s)
	require.NoError(t, err)
	require.True(t, view.Total.Equal(dec("45")))
	require.Equal(t, "GBP", view.Currency)

	res, err := h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: view.UIC, Total: dec("45.00"), Currency: "gbp"})
	require.NoError(t, err)
	require.NotEmpty(t, res.PaymentURL)
	require.NotContains(t, s.Continuity, view.UIC, "token is single use")

	po, err := fakeOrders{h.w}.Get(ctx, res.PurchaseOrderID)
	require.NoError(t, err)
	require.Equal(t, model.OrderPending, po.Status)
	lines, _ := fakeOrders{h.w}.LineItems(ctx, po.ID)
	require.Len(t, lines, 2)
	require.Equal(t, model.LineCharge, lines[0].Type)
	require.Equal(t, model.LineDiscount, lines[1].Type)

	cs, _ := fakeOrders{h.w}.GetCheckoutSession(ctx, res.CheckoutSessionID)
	ps, err := h.pay.RetrieveSession(ctx, cs.ProviderSessionID)
	require.NoError(t, err)
	require.Equal(t, int64(4500), ps.AmountMinor)
	require.Equal(t, "http://api.test/checkout/success?checkoutSessionId="+cs.ID, ps.SuccessURL)
	require.Equal(t, "http://api.test/checkout/cancel?checkoutSessionId="+cs.ID, ps.CancelURL)
	require.Equal(t, po.ID, ps.Metadata["purchaseOrderId"])

	_, err = h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: view.UIC, Total: dec("45"), Currency: "GBP"})
	require.Equal(t, "InvalidUIC", codeOf(err))
	require.Equal(t, 1.0, testutil.ToFloat64(h.metrics.CheckoutTransitions.WithLabelValues("initiate", "ok")))
}

func TestCheckout_Initiate_RejectsMismatch(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()
	view, err := h.cart.GetCart(ctx, s)
	require.NoError(t, err)

	for name, req := range map[string]InitiateRequest{
		"total":    {OrganisationID: "O1", UIC: view.UIC, Total: dec("50"), Currency: "GBP"},
		"currency": {OrganisationID: "O1", UIC: view.UIC, Total: dec("45"), Currency: "USD"},
	} {
		_, err := h.checkout.Initiate(ctx, s, req)
		require.Equal(t, "InvalidUIC", codeOf(err), name)
	}

	// the catalog moved under the token
	h.w.addSku("A", "VIP", "11.00", "GBP")
	_, err = h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: view.UIC, Total: dec("45"), Currency: "GBP"})
	require.Equal(t, "InvalidUIC", codeOf(err))
	require.Empty(t, h.w.orders)
}

func TestCheckout_Initiate_Expired(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()
	view, err := h.cart.GetCart(ctx, s)
	require.NoError(t, err)

	h.clock.Advance(5 * time.Minute)
	_, err = h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: view.UIC, Total: view.Total, Currency: "GBP"})
	require.Equal(t, "ExpiredUIC", codeOf(err))
}

func TestCheckout_Initiate_RequiresManageLicenses(t *testing.T) {
	h, _ := checkoutFixture(t)
	ctx := context.Background()
	s := h.activeSession()
	_, err := h.cart.SetItem(ctx, s, "A", 1, false)
	require.NoError(t, err)
	view, err := h.cart.GetCart(ctx, s)
	require.NoError(t, err)

	_, err = h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: view.UIC, Total: view.Total, Currency: "GBP"})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Contains(t, s.Continuity, view.UIC, "a failed attempt keeps the token")
}

func TestCheckout_Initiate_InconsistentCurrency(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()
	h.w.addSku("B", "STD", "5.00", "USD")
	_, err := h.cart.SetItem(ctx, s, "B", 1, false)
	require.NoError(t, err)

	_, err = h.cart.GetCart(ctx, s)
	require.ErrorIs(t, err, errs.ErrCart)

	tok, err := h.sessions.IssueUIC(s, model.UIC{Intent: model.IntentBuyNow, Quantity: 1, Currency: "GBP"})
	require.NoError(t, err)
	_, err = h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: tok, Total: dec("1"), Currency: "GBP"})
	require.Equal(t, "InconsistentCurrency", codeOf(err))
	require.Empty(t, h.w.orders, "nothing persisted")
}

func TestCheckout_Initiate_EmptyCart(t *testing.T) {
	h := newHarness(t)
	s := h.licenseManager("O1")
	view, err := h.cart.GetCart(context.Background(), s)
	require.NoError(t, err)
	_, err = h.checkout.Initiate(context.Background(), s, InitiateRequest{OrganisationID: "O1", UIC: view.UIC, Total: view.Total, Currency: "GBP"})
	require.Equal(t, "EmptyCart", codeOf(err))
}

func TestCheckout_BuyNow(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()

	res, err := h.cart.SetItem(ctx, s, "A", 2, true)
	require.NoError(t, err)
	require.NotEmpty(t, res.BuyNowUIC)
	require.Equal(t, []model.CartLine{{SkuID: "A", Quantity: 2}}, res.Lines)

	// a buy-now token carries no total
	out, err := h.checkout.Initiate(ctx, s, InitiateRequest{OrganisationID: "O1", UIC: res.BuyNowUIC, Total: dec("0"), Currency: "GBP"})
	require.NoError(t, err)
	lines, _ := fakeOrders{h.w}.LineItems(ctx, out.PurchaseOrderID)
	require.Len(t, lines, 1)
	require.True(t, lines[0].TotalPrice.Equal(dec("20")))
}

func TestCheckout_ConfirmFulfills(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.w.addSku("A", "VIP", "10.00", "GBP")
	s := h.licenseManager("O1")
	_, err := h.cart.SetItem(ctx, s, "A", 3, false)
	require.NoError(t, err)
	res := initiate(t, h, s)

	_, err = h.checkout.Confirm(ctx, s, res.CheckoutSessionID)
	require.Equal(t, "PaymentNotCompleted", codeOf(err))
	po, _ := fakeOrders{h.w}.Get(ctx, res.PurchaseOrderID)
	require.Equal(t, model.OrderPending, po.Status)

	pay(t, h, res.CheckoutSessionID)
	out, err := h.checkout.Confirm(ctx, s, res.CheckoutSessionID)
	require.NoError(t, err)
	require.Equal(t, model.OrderPaid, out.Order.Status)
	require.Len(t, out.Licenses, 3)
	for _, l := range out.Licenses {
		require.Equal(t, model.LicenseAvailable, l.Status)
		require.Equal(t, "VIP", l.Type)
		require.Equal(t, "O1", l.OrganisationID)
		require.Equal(t, res.PurchaseOrderID, l.PurchaseOrderID)
		require.Equal(t, "A", l.SkuID)
	}
	require.True(t, s.Cart.Empty())

	// duplicate callback
	again, err := h.checkout.Confirm(ctx, nil, res.CheckoutSessionID)
	require.NoError(t, err)
	require.Empty(t, again.Licenses)
	require.Len(t, h.w.licenses, 3)
	require.Equal(t, 3.0, testutil.ToFloat64(h.metrics.LicensesProvisioned))

	details, err := h.checkout.GetPurchaseOrder(ctx, s, res.PurchaseOrderID)
	require.NoError(t, err)
	require.Len(t, details.LineItems, 1)
	require.Len(t, details.Licenses, 3)

	_, err = h.checkout.Cancel(ctx, res.CheckoutSessionID)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	require.Equal(t, "OrderAlreadyPaid", codeOf(err))
}

func TestCheckout_FulfillmentFailureKeepsPayment(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()
	res := initiate(t, h, s)
	pay(t, h, res.CheckoutSessionID)

	h.w.fulfillErr = errors.New("connection reset")
	_, err := h.checkout.Confirm(ctx, s, res.CheckoutSessionID)
	require.ErrorIs(t, err, errs.ErrPipeline)
	require.Equal(t, "FailedToFulfillOrder", codeOf(err))
	require.Equal(t, 1.0, testutil.ToFloat64(h.metrics.FulfillmentFailures))
	require.False(t, s.Cart.Empty(), "cart kept until the order is fulfilled")

	po, _ := fakeOrders{h.w}.Get(ctx, res.PurchaseOrderID)
	require.Equal(t, model.OrderPaid, po.Status)

	h.w.fulfillErr = nil
	lic, err := h.checkout.Fulfill(ctx, res.PurchaseOrderID)
	require.NoError(t, err)
	require.Len(t, lic, 5)
}

func TestCheckout_PaymentProviderDown(t *testing.T) {
	h, s := checkoutFixture(t)
	res := initiate(t, h, s)
	h.w.mu.Lock()
	h.w.checkouts[res.CheckoutSessionID].ProviderSessionID = "cs_missing"
	h.w.mu.Unlock()

	_, err := h.checkout.Confirm(context.Background(), s, res.CheckoutSessionID)
	require.Equal(t, "PaymentProviderUnavailable", codeOf(err))
}

func TestCheckout_Cancel(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()
	res := initiate(t, h, s)

	po, err := h.checkout.Cancel(ctx, res.CheckoutSessionID)
	require.NoError(t, err)
	require.Equal(t, model.OrderCanceled, po.Status)

	po, err = h.checkout.Cancel(ctx, res.CheckoutSessionID)
	require.NoError(t, err, "repeated cancel callback")
	require.Equal(t, model.OrderCanceled, po.Status)

	pay(t, h, res.CheckoutSessionID)
	_, err = h.checkout.Confirm(ctx, s, res.CheckoutSessionID)
	require.Equal(t, "OrderNotPending", codeOf(err))

	_, err = h.checkout.Fulfill(ctx, res.PurchaseOrderID)
	require.Equal(t, "OrderNotPaid", codeOf(err))
}

func TestCheckout_ListAndGetRequireManager(t *testing.T) {
	h, s := checkoutFixture(t)
	ctx := context.Background()
	res := initiate(t, h, s)

	list, err := h.checkout.ListPurchaseOrders(ctx, s, "O1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	outsider := h.licenseManager("O2")
	_, err = h.checkout.ListPurchaseOrders(ctx, outsider, "O1")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	_, err = h.checkout.GetPurchaseOrder(ctx, outsider, res.PurchaseOrderID)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestBuildLicenses(t *testing.T) {
	po := model.PurchaseOrder{ID: "PO1", OrganisationID: "O1"}
	lines := []model.LineItem{
		{SkuID: "S1", SkuCode: "VIP", Type: model.LineCharge, Quantity: 3},
		{SkuID: "S2", Type: model.LineCharge, Quantity: 4},
		{SkuID: "S1", Type: model.LineDiscount, Quantity: 1},
	}
	out := BuildLicenses(po, lines)
	require.Len(t, out, 3)
	for _, l := range out {
		require.Equal(t, model.License{Type: "VIP", OrganisationID: "O1", PurchaseOrderID: "PO1", SkuID: "S1", Status: model.LicenseAvailable}, l)
	}
	require.Empty(t, BuildLicenses(po, lines[1:]))
}
