// Package payment is the narrow contract with the external payment provider
// and an in-process sandbox implementing it.
package payment

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
)

// Payment statuses reported by the provider.
const (
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
)

// CreateRequest describes a hosted payment page for a single amount.
type CreateRequest struct {
	AmountMinor int64 // total in minor units
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// Session is the provider's view of a payment session.
type Session struct {
	ID            string
	URL           string // where the payer completes the payment
	PaymentStatus string
	AmountMinor   int64
	Currency      string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// Provider creates and inspects payment sessions.
type Provider interface {
	CreatePaymentSession(ctx context.Context, req CreateRequest) (*Session, error)
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}

// Sandbox is an in-memory Provider. Payments are completed with MarkPaid.
type Sandbox struct {
	mu       sync.Mutex
	baseURL  string
	sessions map[string]*Session
}

// NewSandbox returns a sandbox whose payment pages live under baseURL.
func NewSandbox(baseURL string) *Sandbox {
	return &Sandbox{baseURL: baseURL, sessions: map[string]*Session{}}
}

// CreatePaymentSession records an unpaid session.
func (s *Sandbox) CreatePaymentSession(_ context.Context, req CreateRequest) (*Session, error) {
	if req.AmountMinor < 0 {
		return nil, errs.Validationf("amount must not be negative")
	}
	if req.Currency == "" {
		return nil, errs.Validationf("currency is required")
	}
	id := "cs_" + ids.New()
	ps := &Session{
		ID:            id,
		URL:           s.baseURL + "/sandbox/pay/" + url.PathEscape(id),
		PaymentStatus: StatusUnpaid,
		AmountMinor:   req.AmountMinor,
		Currency:      req.Currency,
		Metadata:      req.Metadata,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	}
	s.mu.Lock()
	s.sessions[id] = ps
	s.mu.Unlock()
	cp := *ps
	return &cp, nil
}

// RetrieveSession returns a copy of the session.
func (s *Sandbox) RetrieveSession(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("payment session %s: %w", id, errs.ErrNotFound)
	}
	cp := *ps
	return &cp, nil
}

// MarkPaid completes the payment and returns the session.
func (s *Sandbox) MarkPaid(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ps, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("payment session %s: %w", id, errs.ErrNotFound)
	}
	ps.PaymentStatus = StatusPaid
	cp := *ps
	return &cp, nil
}
