package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/payment"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/pricing"
	"github.com/and161185/carder/internal/repository"
	"github.com/and161185/carder/internal/session"
)

const paymentProductName = "Licensing products"

// InitiateRequest is the client's declared checkout.
type InitiateRequest struct {
	OrganisationID string
	UIC            string
	Total          decimal.Decimal
	Currency       string
}

// InitiateResult tells the client where to pay.
type InitiateResult struct {
	PurchaseOrderID   string
	CheckoutSessionID string
	PaymentURL        string
}

// ConfirmResult is a paid order and the licenses provisioned for it.
type ConfirmResult struct {
	Order    *model.PurchaseOrder
	Licenses []model.License
}

// CheckoutConfig holds the public callback base URL.
type CheckoutConfig struct {
	CallbackBaseURL string // e.g. https://api.example.com; callbacks live under /checkout
}

// CheckoutService runs the purchase pipeline: initiate, confirm or cancel,
// and fulfillment.
type CheckoutService struct {
	orders   repository.OrderRepository
	licenses repository.LicenseRepository
	engine   *pricing.Engine
	provider payment.Provider
	sessions *session.Manager
	authz    *policy.Authorizer
	cfg      CheckoutConfig
	log      *zap.Logger
	metrics  *metrics.Metrics
}

// NewCheckoutService constructs a CheckoutService. m may be nil.
func NewCheckoutService(
	orders repository.OrderRepository,
	licenses repository.LicenseRepository,
	engine *pricing.Engine,
	provider payment.Provider,
	sessions *session.Manager,
	authz *policy.Authorizer,
	cfg CheckoutConfig,
	log *zap.Logger,
	m *metrics.Metrics,
) *CheckoutService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CheckoutService{
		orders:   orders,
		licenses: licenses,
		engine:   engine,
		provider: provider,
		sessions: sessions,
		authz:    authz,
		cfg:      cfg,
		log:      log,
		metrics:  m,
	}
}

func (c *CheckoutService) observe(transition string, err error) {
	if c.metrics != nil {
		c.metrics.CheckoutTransitions.WithLabelValues(transition, metrics.Outcome(err)).Inc()
	}
}

func (c *CheckoutService) callbackURL(path, checkoutSessionID string) string {
	return strings.TrimRight(c.cfg.CallbackBaseURL, "/") + path + "?checkoutSessionId=" + url.QueryEscape(checkoutSessionID)
}

// Initiate turns the session cart into a pending order and opens a payment
// session for it. The UIC is consumed only on success.
func (c *CheckoutService) Initiate(ctx context.Context, s *model.Session, req InitiateRequest) (res *InitiateResult, err error) {
	defer func() { c.observe("initiate", err) }()

	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	if err := c.authz.Require(ctx, su.UserID, model.OrganisationRef(req.OrganisationID), model.ActionManageLicenses); err != nil {
		return nil, err
	}

	lines, err := c.engine.ComputeTotals(ctx, s.Cart.Lines)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.New(errs.KindCart, "EmptyCart", "the cart is empty")
	}
	total, currency := pricing.Totals(lines)

	uic, err := c.sessions.ValidateUIC(s, req.UIC, model.IntentCheckout, model.IntentBuyNow)
	if err != nil {
		return nil, err
	}
	if err := matchIntent(uic, s.Cart, req, total, currency); err != nil {
		return nil, err
	}

	po, cs, err := c.orders.CreatePending(ctx, req.OrganisationID, lines)
	if err != nil {
		return nil, err
	}
	ps, err := c.provider.CreatePaymentSession(ctx, payment.CreateRequest{
		AmountMinor: pricing.MinorUnits(total),
		Currency:    currency,
		ProductName: paymentProductName,
		SuccessURL:  c.callbackURL("/checkout/success", cs.ID),
		CancelURL:   c.callbackURL("/checkout/cancel", cs.ID),
		Metadata: map[string]string{
			"purchaseOrderId":           po.ID,
			"internalCheckoutSessionId": cs.ID,
		},
	})
	if err != nil {
		return nil, errs.Wrap(errs.KindPipeline, "PaymentSessionFailed", "could not start the payment", err).
			With("purchaseOrderId", po.ID)
	}
	if ps.URL == "" {
		return nil, errs.New(errs.KindPipeline, "PaymentSessionFailed", "payment provider returned no payment page").
			With("purchaseOrderId", po.ID)
	}
	if err := c.orders.SetProviderSession(ctx, cs.ID, ps.ID); err != nil {
		return nil, err
	}

	c.sessions.ConsumeUIC(s, req.UIC)
	return &InitiateResult{PurchaseOrderID: po.ID, CheckoutSessionID: cs.ID, PaymentURL: ps.URL}, nil
}

// matchIntent checks the declared checkout against the token and the
// recomputed cart. A buy-now token carries no total, only the quantity.
func matchIntent(uic model.UIC, cart model.Cart, req InitiateRequest, total decimal.Decimal, currency string) error {
	mismatch := func(field string) error {
		return errs.New(errs.KindValidation, "InvalidUIC", "continuity token does not match the checkout").
			With("field", field)
	}
	switch uic.Intent {
	case model.IntentCheckout:
		if uic.Total == nil || !uic.Total.Equal(total) || !req.Total.Equal(total) {
			return mismatch("total")
		}
	case model.IntentBuyNow:
		if len(cart.Lines) != 1 || cart.Lines[0].Quantity != uic.Quantity {
			return mismatch("quantity")
		}
	}
	if !strings.EqualFold(uic.Currency, req.Currency) || !strings.EqualFold(req.Currency, currency) {
		return mismatch("currency")
	}
	return nil
}

// Confirm handles the provider's success callback. Payment is verified and
// recorded under row locks, then the order is fulfilled. A fulfillment
// failure leaves the payment recorded and is reported as FailedToFulfillOrder.
// When s is not nil its cart is emptied after fulfillment.
func (c *CheckoutService) Confirm(ctx context.Context, s *model.Session, checkoutSessionID string) (*ConfirmResult, error) {
	po, err := c.orders.Confirm(ctx, checkoutSessionID, c.verifyPayment)
	c.observe("confirm", err)
	if err != nil {
		return nil, err
	}

	lic, err := c.Fulfill(ctx, po.ID)
	if err != nil {
		c.log.Error("fulfillment failed after payment",
			zap.String("purchase_order_id", po.ID),
			zap.String("checkout_session_id", checkoutSessionID),
			zap.Error(err),
		)
		if c.metrics != nil {
			c.metrics.FulfillmentFailures.Inc()
		}
		return nil, errs.Wrap(errs.KindPipeline, "FailedToFulfillOrder",
			"something went wrong while fulfilling the order, please contact support", err).
			With("purchaseOrderId", po.ID)
	}
	if s != nil {
		s.Cart.Lines = []model.CartLine{}
	}
	return &ConfirmResult{Order: po, Licenses: lic}, nil
}

func (c *CheckoutService) verifyPayment(ctx context.Context, cs model.CheckoutSession, po model.PurchaseOrder) error {
	if cs.ProviderSessionID == "" {
		return errs.New(errs.KindValidation, "PaymentNotStarted", "checkout has no payment session").
			With("checkoutSessionId", cs.ID)
	}
	ps, err := c.provider.RetrieveSession(ctx, cs.ProviderSessionID)
	if err != nil {
		return errs.Wrap(errs.KindPipeline, "PaymentProviderUnavailable", "could not verify the payment", err).
			With("checkoutSessionId", cs.ID)
	}
	if ps.Metadata["internalCheckoutSessionId"] != cs.ID || ps.Metadata["purchaseOrderId"] != po.ID {
		return errs.New(errs.KindValidation, "PaymentMismatch", "payment session belongs to another checkout").
			With("checkoutSessionId", cs.ID)
	}
	if ps.PaymentStatus != payment.StatusPaid {
		return errs.New(errs.KindValidation, "PaymentNotCompleted", "payment not completed successfully").
			With("checkoutSessionId", cs.ID)
	}
	return nil
}

// Cancel handles the provider's cancel callback.
func (c *CheckoutService) Cancel(ctx context.Context, checkoutSessionID string) (*model.PurchaseOrder, error) {
	po, err := c.orders.Cancel(ctx, checkoutSessionID)
	c.observe("cancel", err)
	return po, err
}

// Fulfill provisions the licenses of a paid order. Repeating it on a
// fulfilled order provisions nothing.
func (c *CheckoutService) Fulfill(ctx context.Context, purchaseOrderID string) ([]model.License, error) {
	lic, err := c.orders.Fulfill(ctx, purchaseOrderID, BuildLicenses)
	c.observe("fulfill", err)
	if err != nil {
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.LicensesProvisioned.Add(float64(len(lic)))
	}
	return lic, nil
}

// BuildLicenses returns one available license per unit of every charge line
// that carries a sku code.
func BuildLicenses(po model.PurchaseOrder, lines []model.LineItem) []model.License {
	var out []model.License
	for _, l := range lines {
		if l.Type != model.LineCharge || l.SkuCode == "" {
			continue
		}
		for range l.Quantity {
			out = append(out, model.License{
				Type:            l.SkuCode,
				OrganisationID:  po.OrganisationID,
				PurchaseOrderID: po.ID,
				SkuID:           l.SkuID,
				Status:          model.LicenseAvailable,
			})
		}
	}
	return out
}

// GetPurchaseOrder returns an order with its line items and licenses to a
// license manager of its organisation.
func (c *CheckoutService) GetPurchaseOrder(ctx context.Context, s *model.Session, purchaseOrderID string) (*model.OrderDetails, error) {
	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	po, err := c.orders.Get(ctx, purchaseOrderID)
	if err != nil {
		return nil, err
	}
	if err := c.authz.Require(ctx, su.UserID, model.OrganisationRef(po.OrganisationID), model.ActionManageLicenses); err != nil {
		return nil, err
	}

	out := &model.OrderDetails{Order: *po}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.LineItems, err = c.orders.LineItems(gctx, po.ID)
		return err
	})
	g.Go(func() (err error) {
		out.Licenses, err = c.licenses.ListByPurchaseOrder(gctx, po.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPurchaseOrders returns the organisation's orders, newest first.
func (c *CheckoutService) ListPurchaseOrders(ctx context.Context, s *model.Session, orgID string) ([]model.PurchaseOrder, error) {
	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	if err := c.authz.Require(ctx, su.UserID, model.OrganisationRef(orgID), model.ActionManageLicenses); err != nil {
		return nil, err
	}
	return c.orders.ListByOrganisation(ctx, orgID)
}
