package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/carder/internal/crypto"
	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
	"github.com/and161185/carder/internal/limiter"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/repository"
	"github.com/and161185/carder/internal/session"
)

// Authentication methods offered to a user.
const (
	MethodPassword = "password"
	MethodEmailOTP = "email-otp"
)

// LoginRequest carries one login attempt.
type LoginRequest struct {
	Handle   string
	UIC      string
	Method   string
	Password string // password method
	Code     string // email-otp method
	Peer     string // client address, used for throttling
}

// AuthOptions is returned to a client about to log in.
type AuthOptions struct {
	UIC     string
	Methods []string
}

// AuthService defines identity and authentication operations.
type AuthService interface {
	// Register creates a user in status created and logs it into s.
	Register(ctx context.Context, s *model.Session, fullName, email, password string) (*model.SessionUser, error)
	// AuthenticationOptions issues a login UIC and an email code for handle.
	AuthenticationOptions(ctx context.Context, s *model.Session, handle string) (AuthOptions, error)
	// Login authenticates with password or email code under rate limiting.
	Login(ctx context.Context, s *model.Session, req LoginRequest) (*model.SessionUser, error)
	// Logout marks s for deletion.
	Logout(s *model.Session)
	// SendActivationCode issues a fresh activation code for the session user.
	SendActivationCode(ctx context.Context, s *model.Session) error
	// Activate moves the session user from created to active.
	Activate(ctx context.Context, s *model.Session, code string) (*model.SessionUser, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions *session.Manager
	lim      limiter.Limiter
	notify   Notifier
	log      *zap.Logger
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, sessions *session.Manager, lim limiter.Limiter, notify Notifier, log *zap.Logger) *AuthServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthServiceImpl{users: users, sessions: sessions, lim: lim, notify: notify, log: log}
}

func loginOTPKey(handle string) string     { return handle + "_login" }
func activationOTPKey(userID string) string { return userID + "_activation" }

func sessionUser(u *model.User) *model.SessionUser {
	return &model.SessionUser{
		UserID:        u.ID,
		AccountStatus: u.AccountStatus,
		FullName:      u.FullName,
		Email:         u.Email,
	}
}

// Register creates a new user record with a per-user salt.
func (a *AuthServiceImpl) Register(ctx context.Context, s *model.Session, fullName, email, password string) (*model.SessionUser, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" {
		return nil, errs.Validationf("full name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.Validationf("invalid email address")
	}
	if len(password) < 8 {
		return nil, errs.Validationf("password must be at least 8 characters")
	}
	salt, err := pkgcrypto.RandBytes(pkgcrypto.SaltLen)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		ID:            ids.New(),
		FullName:      fullName,
		Email:         email,
		PwdHash:       pkgcrypto.HashPassword([]byte(password), salt),
		SaltAuth:      salt,
		AccountStatus: model.AccountCreated,
	}
	if err := a.users.Create(ctx, u); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, errs.Wrap(errs.KindConflict, "DuplicateEmail", "email already exists", err)
		}
		return nil, err
	}
	s.User = sessionUser(u)
	if err := a.sendActivation(ctx, s); err != nil {
		return nil, err
	}
	return s.User, nil
}

func (a *AuthServiceImpl) sendActivation(ctx context.Context, s *model.Session) error {
	code, err := a.sessions.IssueOTP(s, activationOTPKey(s.User.UserID))
	if err != nil {
		return err
	}
	return a.notify.SendCode(ctx, s.User.Email, "activation", code)
}

// AuthenticationOptions requires the user to exist, then binds a login UIC to
// handle and sends an email code.
func (a *AuthServiceImpl) AuthenticationOptions(ctx context.Context, s *model.Session, handle string) (AuthOptions, error) {
	handle = strings.TrimSpace(handle)
	if len(handle) < 3 {
		return AuthOptions{}, errs.Validationf("handle must be at least 3 characters")
	}
	if _, err := a.users.GetByEmail(ctx, handle); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return AuthOptions{}, errs.Wrap(errs.KindNotFound, "UserNotFound", "user not found", err)
		}
		return AuthOptions{}, err
	}
	tok, err := a.sessions.IssueUIC(s, model.UIC{Intent: model.IntentLogin, Handle: handle})
	if err != nil {
		return AuthOptions{}, err
	}
	code, err := a.sessions.IssueOTP(s, loginOTPKey(handle))
	if err != nil {
		return AuthOptions{}, err
	}
	if err := a.notify.SendCode(ctx, handle, "login", code); err != nil {
		return AuthOptions{}, err
	}
	return AuthOptions{UIC: tok, Methods: []string{MethodPassword, MethodEmailOTP}}, nil
}

// Login authenticates with rate limiting by (handle, client address).
func (a *AuthServiceImpl) Login(ctx context.Context, s *model.Session, req LoginRequest) (*model.SessionUser, error) {
	uic, err := a.sessions.ValidateUIC(s, req.UIC, model.IntentLogin)
	if err != nil {
		return nil, err
	}
	if uic.Handle != req.Handle {
		return nil, errs.New(errs.KindValidation, "InvalidUIC", "continuity token was issued for another handle")
	}
	if req.Method != MethodPassword && req.Method != MethodEmailOTP {
		return nil, errs.Validationf("unknown authentication method %q", req.Method)
	}

	ipHash := limiter.HashIP(req.Peer)
	allowed, _, err := a.lim.Allow(ctx, req.Handle, ipHash)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errs.Wrap(errs.KindRateLimited, "TooManyAttempts", "too many failed attempts, try later", errs.ErrRateLimited)
	}

	u, err := a.users.GetByEmail(ctx, req.Handle)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}
	if u == nil || !a.verify(s, u, req) {
		blocked, _, ferr := a.lim.Failure(ctx, req.Handle, ipHash)
		if ferr != nil {
			a.log.Warn("record login failure", zap.Error(ferr))
		} else if blocked {
			return nil, errs.Wrap(errs.KindRateLimited, "TooManyAttempts", "too many failed attempts, try later", errs.ErrRateLimited)
		}
		// unknown handles and wrong secrets look the same
		return nil, errs.New(errs.KindAuthentication, "InvalidCredentials", "invalid credentials")
	}
	if u.AccountStatus != model.AccountCreated && u.AccountStatus != model.AccountActive {
		return nil, errs.New(errs.KindAuthentication, "AccountDisabled", "account is not available").
			With("userId", u.ID)
	}

	if err := a.lim.Success(ctx, req.Handle, ipHash); err != nil {
		a.log.Warn("reset login limiter", zap.Error(err))
	}
	a.sessions.ConsumeUIC(s, req.UIC)
	delete(s.OTPs, loginOTPKey(req.Handle))
	s.User = sessionUser(u)
	return s.User, nil
}

func (a *AuthServiceImpl) verify(s *model.Session, u *model.User, req LoginRequest) bool {
	switch req.Method {
	case MethodPassword:
		return req.Password != "" && pkgcrypto.VerifyPassword([]byte(req.Password), u.SaltAuth, u.PwdHash)
	case MethodEmailOTP:
		return a.sessions.CheckOTP(s, loginOTPKey(req.Handle), req.Code)
	}
	return false
}

// Logout asks the store to drop the session on save.
func (a *AuthServiceImpl) Logout(s *model.Session) {
	s.User = nil
	s.Clear = true
}

// SendActivationCode replaces the pending activation code.
func (a *AuthServiceImpl) SendActivationCode(ctx context.Context, s *model.Session) error {
	su, err := CurrentUser(s, false)
	if err != nil {
		return err
	}
	if su.AccountStatus != model.AccountCreated {
		return errs.New(errs.KindValidation, "AlreadyActivated", "account is already activated")
	}
	return a.sendActivation(ctx, s)
}

// Activate checks the activation code and flips the account to active.
func (a *AuthServiceImpl) Activate(ctx context.Context, s *model.Session, code string) (*model.SessionUser, error) {
	su, err := CurrentUser(s, false)
	if err != nil {
		return nil, err
	}
	if !a.sessions.CheckOTP(s, activationOTPKey(su.UserID), code) {
		return nil, errs.New(errs.KindAuthentication, "InvalidActivationCode", "invalid activation code")
	}
	if err := a.users.SetStatus(ctx, su.UserID, model.AccountCreated, model.AccountActive); err != nil {
		return nil, err
	}
	su.AccountStatus = model.AccountActive
	return su, nil
}
