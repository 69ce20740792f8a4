package store

import (
	"sync"
	"testing"
	"time"

	"gradebook/models"

	"github.com/stretchr/testify/require"
)

func TestSessionStore_CreateAndResolve(t *testing.T) {
	s := NewSessionStore(time.Hour)

	token := s.Create(7, models.RoleStudent)
	require.NotEmpty(t, token)

	sess, err := s.Resolve(token)
	require.NoError(t, err)
	require.Equal(t, uint(7), sess.UserID)
	require.Equal(t, models.RoleStudent, sess.Role)
	require.True(t, sess.ExpiresAt.After(sess.CreatedAt))
}

func TestSessionStore_ResolveUnknownToken(t *testing.T) {
	s := NewSessionStore(time.Hour)

	_, err := s.Resolve("no-such-token")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionStore_TokensAreUnique(t *testing.T) {
	s := NewSessionStore(time.Hour)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := s.Create(uint(i), models.RoleStudent)
		require.False(t, seen[token], "token reissued while still valid")
		seen[token] = true
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	s := NewSessionStore(time.Minute)

	now := time.Now()
	s.now = func() time.Time { return now }
	token := s.Create(1, models.RoleStudent)

	_, err := s.Resolve(token)
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err = s.Resolve(token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionStore_RevokeIsIdempotent(t *testing.T) {
	s := NewSessionStore(time.Hour)

	token := s.Create(1, models.RoleTeacher)
	s.Revoke(token)

	_, err := s.Resolve(token)
	require.ErrorIs(t, err, ErrUnauthenticated)

	// revoking again, or revoking garbage, must not fail
	s.Revoke(token)
	s.Revoke("never-existed")
}

func TestSessionStore_SweepRemovesOnlyExpired(t *testing.T) {
	s := NewSessionStore(time.Minute)

	now := time.Now()
	s.now = func() time.Time { return now }
	expired := s.Create(1, models.RoleStudent)

	s.now = func() time.Time { return now.Add(30 * time.Second) }
	live := s.Create(2, models.RoleStudent)

	s.now = func() time.Time { return now.Add(70 * time.Second) }
	require.Equal(t, 1, s.Sweep())

	_, err := s.Resolve(expired)
	require.ErrorIs(t, err, ErrUnauthenticated)
	_, err = s.Resolve(live)
	require.NoError(t, err)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	s := NewSessionStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			token := s.Create(id, models.RoleStudent)
			sess, err := s.Resolve(token)
			if err == nil && sess.UserID != id {
				t.Errorf("resolved session for wrong user: got %d want %d", sess.UserID, id)
			}
			s.Revoke(token)
		}(uint(i))
	}
	wg.Wait()
}
