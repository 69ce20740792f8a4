package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an opaque, time-bounded proof of authenticated identity.
// Sessions live in process memory: they are ephemeral by nature and a
// restart invalidating them is acceptable (clients just log in again).
type Session struct {
	Token     string
	UserID    uint
	Role      string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore maps opaque tokens to authenticated identities. Safe for
// concurrent Create/Resolve/Revoke.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration

	now func() time.Time // overridable for expiry tests
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create issues a fresh token for the user. UUIDv4 collisions are not a
// practical concern, but the live-token check keeps the uniqueness
// guarantee unconditional.
func (s *SessionStore) Create(userID uint, role string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	token := uuid.NewString()
	for {
		existing, ok := s.sessions[token]
		if !ok || !existing.ExpiresAt.After(now) {
			break
		}
		token = uuid.NewString()
	}

	s.sessions[token] = Session{
		Token:     token,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	return token
}

// Resolve returns the session for a token, or ErrUnauthenticated if the
// token is absent, expired, or revoked.
func (s *SessionStore) Resolve(token string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || !sess.ExpiresAt.After(s.now()) {
		return nil, ErrUnauthenticated
	}
	return &sess, nil
}

// Revoke removes a token. Revoking an absent token is not an error.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep drops expired sessions and reports how many were removed.
// Called periodically by the scheduler; Resolve never returns an
// expired session regardless, so sweeping only reclaims memory.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, sess := range s.sessions {
		if !sess.ExpiresAt.After(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}
