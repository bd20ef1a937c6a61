// Package session keeps per-caller state (principal, cart, continuity tokens
// and one-time codes) behind a store that is either in memory or in Postgres.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

// MemoryStore is an in-process session store. Sessions are kept encoded so a
// caller mutating a loaded session never changes the stored copy.
type MemoryStore struct {
	mu   sync.RWMutex
	now  func() time.Time
	data map[string]memEntry
}

type memEntry struct {
	doc     []byte
	touched time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now, data: map[string]memEntry{}}
}

// Get decodes the stored session.
func (m *MemoryStore) Get(_ context.Context, id string) (*model.Session, error) {
	m.mu.RLock()
	e, ok := m.data[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session: %w", errs.ErrNotFound)
	}
	s := model.NewSession()
	if err := json.Unmarshal(e.doc, s); err != nil {
		return nil, fmt.Errorf("session %s: decode: %w", id, err)
	}
	s.Normalize()
	return s, nil
}

// Put encodes and stores the session.
func (m *MemoryStore) Put(_ context.Context, id string, s *model.Session) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session %s: encode: %w", id, err)
	}
	m.mu.Lock()
	m.data[id] = memEntry{doc: doc, touched: m.now()}
	m.mu.Unlock()
	return nil
}

// Delete drops a session.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.data, id)
	m.mu.Unlock()
	return nil
}

// DeleteIdle drops sessions last written before cutoff.
func (m *MemoryStore) DeleteIdle(_ context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, e := range m.data {
		if e.touched.Before(cutoff) {
			delete(m.data, id)
			n++
		}
	}
	return n, nil
}

// Len reports how many sessions are held.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
