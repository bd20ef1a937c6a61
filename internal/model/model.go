// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of a user account.
type AccountStatus string

// Account statuses.
const (
	AccountCreated   AccountStatus = "created"
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
	AccountDeleted   AccountStatus = "deleted"
)

// User represents an account stored on the server.
type User struct {
	ID            string        // ULID
	FullName      string
	Email         string        // unique, used as login handle
	PwdHash       []byte        // Argon2id(password, SaltAuth)
	SaltAuth      []byte        // per-user auth salt
	AccountStatus AccountStatus
	CreatedAt     time.Time
}

// Organisation is a tenant.
type Organisation struct {
	ID   string
	Key  string // unique slug
	Name string
}

// Role groups users inside an organisation.
type Role struct {
	ID             string
	OrganisationID string
	Name           string
}

// Event belongs to an organisation.
type Event struct {
	ID             string
	OrganisationID string
	Name           string
	Status         string // planned, upcoming, live, completed, cancelled
}

// AttendeeProfile is an enrolment of a person in an event.
type AttendeeProfile struct {
	ID             string
	EventID        string
	OrganisationID string // resolved through the event
	FullName       string
	Email          string
}

// SKU is a sellable unit.
type SKU struct {
	ID          string
	Code        string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Currency    string
}

// BulkPricingOffer discounts a SKU line whose quantity is in [MinQuantity, MaxQuantity).
type BulkPricingOffer struct {
	ID           string
	SkuID        string
	MinQuantity  int64
	MaxQuantity  int64
	DiscountRate decimal.Decimal // 0.10 means 10%
}

// Applies reports whether the offer covers quantity; min inclusive, max exclusive.
func (o BulkPricingOffer) Applies(quantity int64) bool {
	return o.MinQuantity <= quantity && quantity < o.MaxQuantity
}

// SKUWithOffers is a catalog entry aggregated with its offers.
type SKUWithOffers struct {
	SKU
	Offers []BulkPricingOffer
}

// LineType distinguishes charges from discounts.
type LineType string

// Line types.
const (
	LineCharge   LineType = "charge"
	LineDiscount LineType = "discount"
)

// LineItem is a priced snapshot of a cart line. Name, code, price and currency
// are copied from the catalog so later catalog edits never alter history.
type LineItem struct {
	ID                  string // empty until persisted
	PurchaseOrderID     string // empty until persisted
	SkuID               string
	SkuName             string
	SkuCode             string // empty means none
	Type                LineType
	Quantity            int64
	UnitPrice           decimal.Decimal // negative for discounts
	TotalPrice          decimal.Decimal // negative for discounts
	Currency            string
	AppliedOfferID      string          // discount lines only
	AppliedDiscountRate decimal.Decimal // discount lines only, not persisted
}

// OrderStatus is shared by purchase orders and checkout sessions.
type OrderStatus string

// Order statuses. Paid and canceled are terminal.
const (
	OrderPending  OrderStatus = "pending"
	OrderPaid     OrderStatus = "paid"
	OrderCanceled OrderStatus = "canceled"
)

// Terminal reports whether no further transition is allowed.
func (s OrderStatus) Terminal() bool { return s == OrderPaid || s == OrderCanceled }

// PurchaseOrder owns a set of line items and is 1:1 with a checkout session.
type PurchaseOrder struct {
	ID             string
	OrganisationID string
	Status         OrderStatus
	FulfilledAt    *time.Time // set once licenses were provisioned
	CreatedAt      time.Time
}

// CheckoutSession links a purchase order to an external payment session.
type CheckoutSession struct {
	ID                string
	OrganisationID    string
	PurchaseOrderID   string
	Status            OrderStatus
	ProviderSessionID string
}

// LicenseStatus is the license state machine.
type LicenseStatus string

// License statuses.
const (
	LicenseAvailable LicenseStatus = "available"
	LicenseAssigned  LicenseStatus = "assigned"
	LicenseConsumed  LicenseStatus = "consumed"
	LicenseExpired   LicenseStatus = "expired"
)

// License is a provisioned entitlement.
type License struct {
	ID              string
	Type            string // copied from the sku code
	OrganisationID  string
	PurchaseOrderID string
	SkuID           string
	Status          LicenseStatus
}

// Assignment target kinds.
const TargetAttendeeProfile = "attendeeProfile"

// LicenseAssignment binds a license to one target.
type LicenseAssignment struct {
	ID         string
	LicenseID  string
	TargetKind string
	TargetID   string
}

// AssignedLicense is a license together with its current assignment.
type AssignedLicense struct {
	License    License
	Assignment LicenseAssignment
}

// OrderDetails is a purchase order with everything it owns.
type OrderDetails struct {
	Order     PurchaseOrder
	LineItems []LineItem
	Licenses  []License
}
