package grpcserver

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

type ctxKey string

const sessionKey ctxKey = "carder.session"

type boundSession struct {
	id string
	s  *model.Session
}

// WithSession stores the caller's loaded session in context.
func WithSession(ctx context.Context, id string, s *model.Session) context.Context {
	return context.WithValue(ctx, sessionKey, boundSession{id: id, s: s})
}

// SessionFromCtx fetches the session bound by SessionUnary.
func SessionFromCtx(ctx context.Context) (string, *model.Session, bool) {
	b, ok := ctx.Value(sessionKey).(boundSession)
	if !ok || b.s == nil {
		return "", nil, false
	}
	return b.id, b.s, true
}
