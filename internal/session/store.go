package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 30 * time.Minute

// Store keeps sessions in memory, keyed by ID.
type Store struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates a Store that evicts sessions idle for longer than ttl.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Get returns the session with the given ID and marks it as seen. The touch
// happens under the store lock so a concurrent Sweep cannot evict a session
// that Get is about to hand out.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.touch(s.now())
	}
	return sess, ok
}

// Create starts a new session in learn mode.
func (s *Store) Create() *Session {
	sess := newSession(uuid.New(), s.now())
	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	return sess
}

// GetOrCreate returns the session for id, or a fresh one if id is unknown or
// has expired. The second return value reports whether a session was created.
func (s *Store) GetOrCreate(id uuid.UUID) (*Session, bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(), true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed. Sessions with a request in flight are kept.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		idle, pending := sess.idleSince(now)
		if pending || idle <= s.ttl {
			continue
		}
		delete(s.sessions, id)
		removed++
	}
	return removed
}
