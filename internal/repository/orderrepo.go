package repository

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

// PaymentCheck is run while the checkout session and purchase order rows are
// locked; a non-nil error aborts the confirmation.
type PaymentCheck func(ctx context.Context, cs model.CheckoutSession, po model.PurchaseOrder) error

// LicenseBuilder turns a paid order's line items into the licenses to provision.
type LicenseBuilder func(po model.PurchaseOrder, lines []model.LineItem) []model.License

// OrderRepository drives purchase orders and checkout sessions through their states.
type OrderRepository interface {
	// CreatePending inserts a pending purchase order, its line items and a pending
	// checkout session in one transaction.
	CreatePending(ctx context.Context, organisationID string, lines []model.LineItem) (*model.PurchaseOrder, *model.CheckoutSession, error)
	// SetProviderSession records the payment provider's session id.
	SetProviderSession(ctx context.Context, checkoutSessionID, providerSessionID string) error
	// Confirm locks the checkout session and its order FOR UPDATE, runs check and
	// marks both paid. An already paid pair is returned unchanged.
	Confirm(ctx context.Context, checkoutSessionID string, check PaymentCheck) (*model.PurchaseOrder, error)
	// Cancel locks the checkout session FOR UPDATE and marks it and its order canceled.
	Cancel(ctx context.Context, checkoutSessionID string) (*model.PurchaseOrder, error)
	// Fulfill takes shared locks on the order and its line items and inserts the
	// licenses produced by build, at most once per order.
	Fulfill(ctx context.Context, purchaseOrderID string, build LicenseBuilder) ([]model.License, error)
	// Get loads a purchase order.
	Get(ctx context.Context, id string) (*model.PurchaseOrder, error)
	// GetCheckoutSession loads a checkout session.
	GetCheckoutSession(ctx context.Context, id string) (*model.CheckoutSession, error)
	// LineItems returns the order's line items.
	LineItems(ctx context.Context, purchaseOrderID string) ([]model.LineItem, error)
	// ListByOrganisation returns the organisation's orders, newest first.
	ListByOrganisation(ctx context.Context, organisationID string) ([]model.PurchaseOrder, error)
}
