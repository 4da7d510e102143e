package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a mutex-guarded in-memory Store. Sessions are lost on
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore creates an empty store. A nil now uses time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{sessions: make(map[string]Session), now: now}
}

// Create implements Store.
func (m *MemoryStore) Create(ctx context.Context, s Session) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	if err := s.validate(); err != nil {
		return Session{}, err
	}
	s.ID = uuid.NewString()
	s.ExpiresAt = s.ExpiresAt.UTC()
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get implements Store. Expired sessions are evicted on read.
func (m *MemoryStore) Get(ctx context.Context, id string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	id = strings.TrimSpace(id)
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.Expired(m.now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return Session{}, ErrExpired
	}
	return s, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.sessions, strings.TrimSpace(id))
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
