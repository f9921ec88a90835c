package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory.  Expired entries are
// dropped when read and by Prune.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]Session
}

// NewMemoryStore returns an empty store whose sessions live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, items: map[string]Session{}}
}

func (m *MemoryStore) TTL() time.Duration { return m.ttl }

func (m *MemoryStore) Create(_ context.Context, userID uint64, isAdmin bool) (*Session, error) {
	s := newSession(userID, isAdmin, m.now(), m.ttl)
	m.mu.Lock()
	m.items[s.ID] = *s
	m.mu.Unlock()
	return s, nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !m.now().Before(s.ExpiresAt) {
		delete(m.items, id)
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryStore) Destroy(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}

// Prune removes expired sessions and returns how many were dropped.
func (m *MemoryStore) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	n := 0
	for id, s := range m.items {
		if !now.Before(s.ExpiresAt) {
			delete(m.items, id)
			n++
		}
	}
	return n
}

// StartPruning calls Prune every interval until ctx is cancelled.
func (m *MemoryStore) StartPruning(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.Prune()
			}
		}
	}()
}
