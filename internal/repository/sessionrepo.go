package repository

import (
	"context"
	"time"

	"github.com/and161185/carder/internal/model"
)

// SessionRepository persists per-caller sessions by id.
type SessionRepository interface {
	// Get loads a session. An unknown id yields errs.ErrNotFound.
	Get(ctx context.Context, id string) (*model.Session, error)
	// Put stores the session and refreshes its last-touched time.
	Put(ctx context.Context, id string, s *model.Session) error
	// Delete drops a session; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
	// DeleteIdle drops sessions last touched before cutoff and returns how many.
	DeleteIdle(ctx context.Context, cutoff time.Time) (int64, error)
}
