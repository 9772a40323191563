package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by stores that distinguish a missing session.
var ErrNotFound = errors.New("session not found")

// Credentials are the backend tokens held for one browser session.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	// ExpiresAt bounds how long the store keeps the session. Zero means no
	// store-side expiry.
	ExpiresAt time.Time
}

// Expired reports whether the credentials are past ExpiresAt.
func (c Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Store persists credentials by session id. Each call is atomic for its id.
type Store interface {
	// Get returns the credentials for id. A missing or expired session is
	// reported as ok=false with a nil error.
	Get(ctx context.Context, id string) (creds Credentials, ok bool, err error)
	Put(ctx context.Context, id string, creds Credentials) error
	// Delete removes id. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Credentials
	now      func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Credentials), now: time.Now}
}

// Get returns a session, dropping it when expired.
func (s *MemoryStore) Get(ctx context.Context, id string) (Credentials, bool, error) {
	if err := ctx.Err(); err != nil {
		return Credentials{}, false, err
	}
	s.mu.RLock()
	creds, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return Credentials{}, false, nil
	}
	if creds.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return Credentials{}, false, nil
	}
	return creds, true, nil
}

// Put stores or replaces a session.
func (s *MemoryStore) Put(ctx context.Context, id string, creds Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions[id] = creds
	s.mu.Unlock()
	return nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
