package state

import (
	"sync"
	"time"
)

// Store keeps sessions in memory. Sessions give chat clients a stable
// handle across requests; they do not survive restarts.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// Get returns a copy of the session with the given ID, if present
func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return *sess, true
}

// Touch records a turn against the session, creating it on first use
func (s *Store) Touch(id string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{ID: id, CreatedAt: time.Now()}
		s.sessions[id] = sess
	}
	sess.Turns++
	return *sess
}

// Len returns the number of active sessions
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
