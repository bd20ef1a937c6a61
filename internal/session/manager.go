package session

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/carder/internal/crypto"
	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/repository"
)

// Defaults.
const (
	DefaultTokenTTL = 5 * time.Minute
	DefaultIdleTTL  = 24 * time.Hour
	tokenBytes      = 32
	otpDigits       = 6
)

// Options configure a Manager. Zero values take the defaults.
type Options struct {
	TokenTTL time.Duration // lifetime of continuity tokens and one-time codes
	IdleTTL  time.Duration // sessions untouched for longer are swept
	Now      func() time.Time
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
}

// Manager loads and saves sessions and manages continuity tokens in them.
type Manager struct {
	store    repository.SessionRepository
	tokenTTL time.Duration
	idleTTL  time.Duration
	now      func() time.Time
	log      *zap.Logger
	metrics  *metrics.Metrics
}

// NewManager constructs a Manager over store.
func NewManager(store repository.SessionRepository, opt Options) *Manager {
	m := &Manager{
		store:    store,
		tokenTTL: opt.TokenTTL,
		idleTTL:  opt.IdleTTL,
		now:      opt.Now,
		log:      opt.Logger,
		metrics:  opt.Metrics,
	}
	if m.tokenTTL <= 0 {
		m.tokenTTL = DefaultTokenTTL
	}
	if m.idleTTL <= 0 {
		m.idleTTL = DefaultIdleTTL
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	return m
}

// TokenTTL is the validity window of continuity tokens.
func (m *Manager) TokenTTL() time.Duration { return m.tokenTTL }

// Create stores a blank session under a fresh id.
func (m *Manager) Create(ctx context.Context) (string, *model.Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", nil, err
	}
	s := model.NewSession()
	if err := m.store.Put(ctx, id.String(), s); err != nil {
		return "", nil, err
	}
	return id.String(), s, nil
}

// Load fetches a session and drops its expired tokens. An unknown id is an
// Authentication error.
func (m *Manager) Load(ctx context.Context, id string) (*model.Session, error) {
	s, err := m.store.Get(ctx, id)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.Wrap(errs.KindAuthentication, "SessionNotFound", "session expired or unknown", err)
	}
	if err != nil {
		return nil, err
	}
	m.sweep(s)
	return s, nil
}

// Save writes the session back, or deletes it when it was cleared.
func (m *Manager) Save(ctx context.Context, id string, s *model.Session) error {
	if s.Clear {
		return m.store.Delete(ctx, id)
	}
	m.sweep(s)
	return m.store.Put(ctx, id, s)
}

func (m *Manager) sweep(s *model.Session) {
	if n := s.SweepExpired(m.now(), m.tokenTTL); n > 0 {
		m.log.Debug("swept continuity tokens", zap.Int("count", n))
	}
}

// IssueUIC stamps u with the current time, stores it in s under a fresh random
// token and returns the token.
func (m *Manager) IssueUIC(s *model.Session, u model.UIC) (string, error) {
	tok, err := crypto.Token(tokenBytes)
	if err != nil {
		return "", err
	}
	u.IssuedAt = m.now()
	if s.Continuity == nil {
		s.Continuity = map[string]model.UIC{}
	}
	s.Continuity[tok] = u
	return tok, nil
}

// ValidateUIC returns the payload stored under token when its intent is one of
// intents and it has not expired. The token is left in place; ConsumeUIC
// removes it once the guarded step succeeds. An expired token is removed.
func (m *Manager) ValidateUIC(s *model.Session, token string, intents ...model.Intent) (model.UIC, error) {
	u, ok := s.Continuity[token]
	if token == "" || !ok {
		return model.UIC{}, errs.New(errs.KindValidation, "InvalidUIC", "unknown or already used continuity token")
	}
	if u.Expired(m.now(), m.tokenTTL) {
		delete(s.Continuity, token)
		return model.UIC{}, errs.New(errs.KindValidation, "ExpiredUIC", "continuity token has expired")
	}
	if len(intents) > 0 && !slices.Contains(intents, u.Intent) {
		return model.UIC{}, errs.New(errs.KindValidation, "InvalidUIC", "continuity token was issued for another intent").
			With("intent", string(u.Intent))
	}
	return u, nil
}

// ConsumeUIC deletes token so it cannot be used again.
func (m *Manager) ConsumeUIC(s *model.Session, token string) {
	delete(s.Continuity, token)
}

// SetOTP stores a one-time code under key.
func (m *Manager) SetOTP(s *model.Session, key, code string) {
	if s.OTPs == nil {
		s.OTPs = map[string]model.OTP{}
	}
	s.OTPs[key] = model.OTP{Code: code, IssuedAt: m.now()}
}

// IssueOTP generates a six digit code, stores it under key and returns it.
func (m *Manager) IssueOTP(s *model.Session, key string) (string, error) {
	code, err := crypto.OTP(otpDigits)
	if err != nil {
		return "", err
	}
	m.SetOTP(s, key, code)
	return code, nil
}

// CheckOTP compares code against the stored one and removes it on success.
func (m *Manager) CheckOTP(s *model.Session, key, code string) bool {
	want, ok := s.OTPs[key]
	if !ok || strings.TrimSpace(code) == "" || !crypto.Equal(want.Code, code) {
		return false
	}
	if !want.IssuedAt.Add(m.tokenTTL).After(m.now()) {
		delete(s.OTPs, key)
		return false
	}
	delete(s.OTPs, key)
	return true
}

// SweepIdle deletes sessions untouched for longer than the idle TTL.
func (m *Manager) SweepIdle(ctx context.Context) (int64, error) {
	n, err := m.store.DeleteIdle(ctx, m.now().Add(-m.idleTTL))
	if err != nil {
		return 0, err
	}
	if m.metrics != nil {
		m.metrics.SessionsSwept.Add(float64(n))
	}
	return n, nil
}

// RunJanitor calls SweepIdle every interval until ctx is done.
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := m.SweepIdle(ctx)
			if err != nil {
				m.log.Warn("session sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				m.log.Info("swept idle sessions", zap.Int64("count", n))
			}
		}
	}
}
