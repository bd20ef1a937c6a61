// Package service contains the back office application services. Services
// operate on a session already loaded by the transport and leave saving it to
// the caller.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

// CurrentUser returns the session's principal. With requireActive the account
// must also be active.
func CurrentUser(s *model.Session, requireActive bool) (*model.SessionUser, error) {
	if s == nil || s.User == nil || s.User.UserID == "" {
		return nil, errs.New(errs.KindAuthentication, "NotAuthenticated", "user not authenticated")
	}
	if requireActive && s.User.AccountStatus != model.AccountActive {
		return nil, errs.New(errs.KindAuthentication, "AccountNotActive", "user account is not active").
			With("userId", s.User.UserID)
	}
	return s.User, nil
}

// Notifier delivers one-time codes to users out of band.
type Notifier interface {
	SendCode(ctx context.Context, email, purpose, code string) error
}

// LogNotifier writes codes to the logger at debug level. It stands in for a
// mailer in development.
type LogNotifier struct {
	Log *zap.Logger
}

// SendCode implements Notifier.
func (n LogNotifier) SendCode(_ context.Context, email, purpose, code string) error {
	n.Log.Debug("one-time code", zap.String("email", email), zap.String("purpose", purpose), zap.String("code", code))
	return nil
}
