package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used when no Redis URL is
// configured. Entries expire after the TTL; expired entries are reaped
// lazily on read and by a background sweep.
type MemoryStore struct {
	entries sync.Map
	ttl     time.Duration
}

type memoryEntry struct {
	token     string
	expiresAt time.Time
}

// NewMemoryStore creates a memory-backed session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{ttl: ttl}
	go s.sweep()
	return s
}

// Token returns the stored credential, or "" when absent or expired.
func (s *MemoryStore) Token(_ context.Context, sessionID string) (string, error) {
	value, ok := s.entries.Load(sessionID)
	if !ok {
		return "", nil
	}
	entry := value.(memoryEntry)
	if time.Now().After(entry.expiresAt) {
		s.entries.Delete(sessionID)
		return "", nil
	}
	return entry.token, nil
}

// Save stores the credential with the configured TTL.
func (s *MemoryStore) Save(_ context.Context, sessionID, token string) error {
	s.entries.Store(sessionID, memoryEntry{token: token, expiresAt: time.Now().Add(s.ttl)})
	return nil
}

// Clear removes the credential.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.entries.Delete(sessionID)
	return nil
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		now := time.Now()
		s.entries.Range(func(key, value any) bool {
			if now.After(value.(memoryEntry).expiresAt) {
				s.entries.Delete(key)
			}
			return true
		})
	}
}
