package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/and161185/carder/internal/model"
)

// SessionRepo implements SessionRepository as one JSONB document per session.
type SessionRepo struct{ db *DB }

// NewSessionRepo constructs a session repository.
func NewSessionRepo(db *DB) *SessionRepo { return &SessionRepo{db: db} }

// Get loads and decodes a session.
func (r *SessionRepo) Get(ctx context.Context, id string) (*model.Session, error) {
	var data []byte
	if err := r.db.Pool.QueryRow(ctx, `SELECT data FROM sessions WHERE id=$1`, id).Scan(&data); err != nil {
		return nil, notFound(err, "session")
	}
	s := model.NewSession()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("session %s: decode: %w", id, err)
	}
	s.Normalize()
	return s, nil
}

// Put upserts the session document.
func (r *SessionRepo) Put(ctx context.Context, id string, s *model.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session %s: encode: %w", id, err)
	}
	const q = `
INSERT INTO sessions (id, data, updated_at) VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data, updated_at=now()`
	_, err = r.db.Pool.Exec(ctx, q, id, data)
	return err
}

// Delete drops a session.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	return err
}

// DeleteIdle drops sessions last written before cutoff.
func (r *SessionRepo) DeleteIdle(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM sessions WHERE updated_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
