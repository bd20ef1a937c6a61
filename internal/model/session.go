package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the action a UIC token was issued for.
type Intent string

// Intents.
const (
	IntentLogin    Intent = "login"
	IntentCheckout Intent = "checkout"
	IntentBuyNow   Intent = "buyNow"
)

// UIC is a user intent continuity token payload: a single-use nonce binding a
// declared intent and its context to the session.
type UIC struct {
	Intent   Intent           `json:"intent"`
	Handle   string           `json:"handle,omitempty"`   // login
	Total    *decimal.Decimal `json:"total,omitempty"`    // checkout
	Currency string           `json:"currency,omitempty"` // checkout, buyNow
	Quantity int64            `json:"quantity,omitempty"` // buyNow
	IssuedAt time.Time        `json:"issuedAt"`
}

// Expired reports whether the token is no longer valid at now.
func (u UIC) Expired(now time.Time, ttl time.Duration) bool {
	return !u.IssuedAt.Add(ttl).After(now)
}

// OTP is a one-time code held in the session. It shares the UIC validity window.
type OTP struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issuedAt"`
}

// SessionUser is the authenticated principal held in a session.
type SessionUser struct {
	UserID        string        `json:"userId"`
	AccountStatus AccountStatus `json:"accountStatus,omitempty"`
	FullName      string        `json:"fullName,omitempty"`
	Email         string        `json:"email,omitempty"`
}

// CartLine is one (sku, quantity) selection.
type CartLine struct {
	SkuID    string `json:"skuId"`
	Quantity int64  `json:"quantity"`
}

// Cart is the session-scoped list of selections.
type Cart struct {
	Lines []CartLine `json:"cartLineItems"`
}

// Set updates the quantity for skuID, appending a new line when absent.
// A zero quantity removes the line.
func (c *Cart) Set(skuID string, quantity int64) {
	for i := range c.Lines {
		if c.Lines[i].SkuID != skuID {
			continue
		}
		if quantity == 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
		c.Lines[i].Quantity = quantity
		return
	}
	if quantity > 0 {
		c.Lines = append(c.Lines, CartLine{SkuID: skuID, Quantity: quantity})
	}
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool { return len(c.Lines) == 0 }

// Session is per-caller server state. Its shape is the same for every store backend.
type Session struct {
	User       *SessionUser   `json:"user,omitempty"`
	Continuity map[string]UIC `json:"continuity"`
	OTPs       map[string]OTP `json:"otps"`
	Cart       Cart           `json:"cart"`

	// Clear asks the store to drop the session on save (logout).
	Clear bool `json:"-"`
}

// NewSession returns a blank session.
func NewSession() *Session {
	return &Session{
		Continuity: map[string]UIC{},
		OTPs:       map[string]OTP{},
		Cart:       Cart{Lines: []CartLine{}},
	}
}

// Normalize fills nil maps left by decoding older records.
func (s *Session) Normalize() {
	if s.Continuity == nil {
		s.Continuity = map[string]UIC{}
	}
	if s.OTPs == nil {
		s.OTPs = map[string]OTP{}
	}
	if s.Cart.Lines == nil {
		s.Cart.Lines = []CartLine{}
	}
}

// SweepExpired drops UIC tokens and one-time codes older than ttl and returns
// how many were removed.
func (s *Session) SweepExpired(now time.Time, ttl time.Duration) int {
	n := 0
	for tok, u := range s.Continuity {
		if u.Expired(now, ttl) {
			delete(s.Continuity, tok)
			n++
		}
	}
	for key, o := range s.OTPs {
		if !o.IssuedAt.Add(ttl).After(now) {
			delete(s.OTPs, key)
			n++
		}
	}
	return n
}

// DropIntent removes every token issued for intent.
func (s *Session) DropIntent(intent Intent) {
	for tok, u := range s.Continuity {
		if u.Intent == intent {
			delete(s.Continuity, tok)
		}
	}
}
