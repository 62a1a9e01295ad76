package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds live sessions in memory, keyed by uuid. Expired sessions are
// swept lazily on create and rejected on lookup.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session for id, refreshing its idle timer. Expired or
// unknown sessions return false.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := st.now()
	if sess.expired(now, st.ttl) {
		st.mu.Lock()
		delete(st.sessions, id)
		st.mu.Unlock()
		return nil, false
	}
	sess.touch(now)
	return sess, true
}

// Create registers a fresh session and sweeps out expired ones.
func (st *Store) Create() *Session {
	now := st.now()
	sess := newSession(uuid.NewString(), now)

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, old := range st.sessions {
		if old.expired(now, st.ttl) {
			delete(st.sessions, id)
		}
	}
	st.sessions[sess.id] = sess
	return sess
}

// Len reports how many sessions are currently held.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
