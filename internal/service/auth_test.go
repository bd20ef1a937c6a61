package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/limiter"
	"github.com/and161185/carder/internal/model"
)

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	successErr error

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, 0, l.allowErr
}
func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return l.successErr
}
func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}

func newAuth(t *testing.T, lim limiter.Limiter) (*AuthServiceImpl, *harness) {
	t.Helper()
	h := newHarness(t)
	return NewAuthService(fakeUsers{h.w}, h.sessions, lim, h.notify, zaptest.NewLogger(t)), h
}

func codeOf(err error) string {
	var de *errs.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

func TestAuth_Register_Basics(t *testing.T) {
	t.Parallel()
	a, _ := newAuth(t, &fakeLimiter{allowOK: true})
	ctx := context.Background()

	if _, err := a.Register(ctx, model.NewSession(), "", "ada@example.com", "longenough"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on empty name, got %v", err)
	}
	if _, err := a.Register(ctx, model.NewSession(), "Ada", "not-an-email", "longenough"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on bad email, got %v", err)
	}
	if _, err := a.Register(ctx, model.NewSession(), "Ada", "ada@example.com", "short"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error on short password, got %v", err)
	}

	s := model.NewSession()
	su, err := a.Register(ctx, s, "Ada", "ada@example.com", "longenough")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if su.UserID == "" || su.AccountStatus != model.AccountCreated || s.User != su {
		t.Fatalf("bad session user: %+v", su)
	}
	if _, ok := s.OTPs[su.UserID+"_activation"]; !ok {
		t.Fatalf("activation code not stored in session")
	}

	_, err = a.Register(ctx, model.NewSession(), "Ada Again", "ada@example.com", "longenough")
	if !errors.Is(err, errs.ErrAlreadyExists) || codeOf(err) != "DuplicateEmail" {
		t.Fatalf("want DuplicateEmail conflict, got %v", err)
	}
}

func TestAuth_Activate(t *testing.T) {
	t.Parallel()
	a, h := newAuth(t, &fakeLimiter{allowOK: true})
	ctx := context.Background()

	if _, err := a.Activate(ctx, model.NewSession(), "123456"); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("want unauthenticated without a user, got %v", err)
	}

	s := model.NewSession()
	su, err := a.Register(ctx, s, "Ada", "ada@example.com", "longenough")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	code := h.notify.code("ada@example.com", "activation")
	if len(code) != 6 {
		t.Fatalf("activation code not delivered: %q", code)
	}

	if _, err := a.Activate(ctx, s, "not-it"); codeOf(err) != "InvalidActivationCode" {
		t.Fatalf("want InvalidActivationCode, got %v", err)
	}
	got, err := a.Activate(ctx, s, code)
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if got.AccountStatus != model.AccountActive {
		t.Fatalf("want active, got %s", got.AccountStatus)
	}
	stored, _ := fakeUsers{h.w}.GetByID(ctx, su.UserID)
	if stored.AccountStatus != model.AccountActive {
		t.Fatalf("status not persisted: %s", stored.AccountStatus)
	}
	if err := a.SendActivationCode(ctx, s); codeOf(err) != "AlreadyActivated" {
		t.Fatalf("want AlreadyActivated, got %v", err)
	}
}

func TestAuth_ActivationCodeExpires(t *testing.T) {
	t.Parallel()
	a, h := newAuth(t, &fakeLimiter{allowOK: true})
	ctx := context.Background()

	s := model.NewSession()
	if _, err := a.Register(ctx, s, "Ada", "ada@example.com", "longenough"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	h.clock.Advance(6 * time.Minute)
	if _, err := a.Activate(ctx, s, h.notify.code("ada@example.com", "activation")); err == nil {
		t.Fatalf("want expired activation code rejected")
	}
	if err := a.SendActivationCode(ctx, s); err != nil {
		t.Fatalf("SendActivationCode: %v", err)
	}
	if _, err := a.Activate(ctx, s, h.notify.code("ada@example.com", "activation")); err != nil {
		t.Fatalf("Activate with fresh code: %v", err)
	}
}

func registered(t *testing.T, a *AuthServiceImpl) {
	t.Helper()
	if _, err := a.Register(context.Background(), model.NewSession(), "Ada", "ada@example.com", "correct-horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestAuth_AuthenticationOptions(t *testing.T) {
	t.Parallel()
	a, h := newAuth(t, &fakeLimiter{allowOK: true})
	registered(t, a)
	ctx := context.Background()

	if _, err := a.AuthenticationOptions(ctx, model.NewSession(), "nobody@example.com"); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("want not found for unknown handle, got %v", err)
	}

	s := model.NewSession()
	opts, err := a.AuthenticationOptions(ctx, s, "ada@example.com")
	if err != nil {
		t.Fatalf("AuthenticationOptions: %v", err)
	}
	if len(opts.UIC) != 64 || len(opts.Methods) != 2 {
		t.Fatalf("bad options: %+v", opts)
	}
	u := s.Continuity[opts.UIC]
	if u.Intent != model.IntentLogin || u.Handle != "ada@example.com" {
		t.Fatalf("bad login token: %+v", u)
	}
	if s.OTPs["ada@example.com_login"].Code != h.notify.code("ada@example.com", "login") {
		t.Fatalf("login code in session differs from the delivered one")
	}
}

func TestAuth_Login_Password(t *testing.T) {
	t.Parallel()
	lim := &fakeLimiter{allowOK: true}
	a, _ := newAuth(t, lim)
	registered(t, a)
	ctx := context.Background()

	s := model.NewSession()
	opts, err := a.AuthenticationOptions(ctx, s, "ada@example.com")
	if err != nil {
		t.Fatalf("AuthenticationOptions: %v", err)
	}

	req := LoginRequest{Handle: "ada@example.com", UIC: opts.UIC, Method: MethodPassword, Password: "wrong", Peer: "10.0.0.1:4000"}
	if _, err := a.Login(ctx, s, req); codeOf(err) != "InvalidCredentials" {
		t.Fatalf("want InvalidCredentials on wrong password, got %v", err)
	}
	if lim.failureCalls != 1 {
		t.Fatalf("want one recorded failure, got %d", lim.failureCalls)
	}

	req.Password = "correct-horse"
	su, err := a.Login(ctx, s, req)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.User == nil || s.User.UserID != su.UserID || su.Email != "ada@example.com" {
		t.Fatalf("session user not set: %+v", s.User)
	}
	if lim.successCalls != 1 {
		t.Fatalf("expected Success() to be called")
	}
	if _, ok := s.OTPs["ada@example.com_login"]; ok {
		t.Fatalf("login code should be cleared")
	}
	if _, err := a.Login(ctx, s, req); codeOf(err) != "InvalidUIC" {
		t.Fatalf("want consumed UIC rejected, got %v", err)
	}
}

func TestAuth_Login_EmailOTP(t *testing.T) {
	t.Parallel()
	a, h := newAuth(t, &fakeLimiter{allowOK: true})
	registered(t, a)
	ctx := context.Background()

	s := model.NewSession()
	opts, _ := a.AuthenticationOptions(ctx, s, "ada@example.com")
	req := LoginRequest{Handle: "ada@example.com", UIC: opts.UIC, Method: MethodEmailOTP, Code: h.notify.code("ada@example.com", "login")}
	if _, err := a.Login(ctx, s, req); err != nil {
		t.Fatalf("Login: %v", err)
	}
}

func TestAuth_Login_TokenChecks(t *testing.T) {
	t.Parallel()
	a, h := newAuth(t, &fakeLimiter{allowOK: true})
	registered(t, a)
	ctx := context.Background()

	s := model.NewSession()
	opts, _ := a.AuthenticationOptions(ctx, s, "ada@example.com")

	req := LoginRequest{Handle: "eve@example.com", UIC: opts.UIC, Method: MethodPassword, Password: "correct-horse"}
	if _, err := a.Login(ctx, s, req); codeOf(err) != "InvalidUIC" {
		t.Fatalf("want InvalidUIC for another handle, got %v", err)
	}

	req.Handle = "ada@example.com"
	req.Method = "sms"
	if _, err := a.Login(ctx, s, req); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error for unknown method, got %v", err)
	}

	req.Method = MethodPassword
	h.clock.Advance(5 * time.Minute)
	if _, err := a.Login(ctx, s, req); codeOf(err) != "ExpiredUIC" {
		t.Fatalf("want ExpiredUIC, got %v", err)
	}
}

func TestAuth_Login_RateLimiter(t *testing.T) {
	t.Parallel()
	lim := &fakeLimiter{allowOK: true}
	a, _ := newAuth(t, lim)
	registered(t, a)
	ctx := context.Background()

	login := func(password string) error {
		s := model.NewSession()
		opts, err := a.AuthenticationOptions(ctx, s, "ada@example.com")
		if err != nil {
			t.Fatalf("AuthenticationOptions: %v", err)
		}
		_, err = a.Login(ctx, s, LoginRequest{Handle: "ada@example.com", UIC: opts.UIC, Method: MethodPassword, Password: password, Peer: "1.2.3.4:5"})
		return err
	}

	lim.allowErr = errors.New("lim-err")
	if err := login("correct-horse"); err == nil {
		t.Fatalf("want limiter error propagate")
	}
	lim.allowErr = nil

	lim.allowOK = false
	if err := login("correct-horse"); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	lim.allowOK = true

	lim.failBlocked = true
	if err := login("wrong"); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited on blocked after failure, got %v", err)
	}
	lim.failBlocked = false

	lim.failErr = errors.New("db down")
	if err := login("wrong"); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("want unauthenticated when failure cannot be recorded, got %v", err)
	}
}

func TestAuth_Login_DisabledAccount(t *testing.T) {
	t.Parallel()
	a, h := newAuth(t, &fakeLimiter{allowOK: true})
	registered(t, a)
	ctx := context.Background()

	u, _ := fakeUsers{h.w}.GetByEmail(ctx, "ada@example.com")
	if err := (fakeUsers{h.w}).SetStatus(ctx, u.ID, model.AccountCreated, model.AccountSuspended); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	s := model.NewSession()
	opts, _ := a.AuthenticationOptions(ctx, s, "ada@example.com")
	_, err := a.Login(ctx, s, LoginRequest{Handle: "ada@example.com", UIC: opts.UIC, Method: MethodPassword, Password: "correct-horse"})
	if codeOf(err) != "AccountDisabled" {
		t.Fatalf("want AccountDisabled, got %v", err)
	}
}

func TestAuth_LogoutAndCurrentUser(t *testing.T) {
	t.Parallel()
	a, h := newAuth(t, &fakeLimiter{allowOK: true})

	s := h.activeSession()
	if _, err := CurrentUser(s, true); err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	s.User.AccountStatus = model.AccountCreated
	if _, err := CurrentUser(s, true); codeOf(err) != "AccountNotActive" {
		t.Fatalf("want AccountNotActive, got %v", err)
	}
	if _, err := CurrentUser(s, false); err != nil {
		t.Fatalf("created user should pass without requireActive: %v", err)
	}

	a.Logout(s)
	if !s.Clear || s.User != nil {
		t.Fatalf("logout should clear the session: %+v", s)
	}
	if _, err := CurrentUser(s, false); !errors.Is(err, errs.ErrUnauthenticated) {
		t.Fatalf("want unauthenticated after logout, got %v", err)
	}
}
