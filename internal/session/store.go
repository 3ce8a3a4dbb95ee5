package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"marketmaster/internal/gateway"
)

// Store holds all live lesson sessions in memory. Sessions idle past the
// ttl are reaped by CleanupExpired, which main runs on a ticker.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*LessonSession
	lastSeen map[string]time.Time
	gw       gateway.Gateway
	ttl      time.Duration
}

// NewStore creates an empty store reaping sessions idle longer than ttl.
func NewStore(gw gateway.Gateway, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*LessonSession),
		lastSeen: make(map[string]time.Time),
		gw:       gw,
		ttl:      ttl,
	}
}

// Create allocates a fresh session with a new id.
func (s *Store) Create() *LessonSession {
	sess := newLessonSession(uuid.New().String(), s.gw)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	s.lastSeen[sess.ID] = time.Now()
	return sess
}

// Get returns the session for id and marks it as seen, or nil when the id
// is unknown or already reaped.
func (s *Store) Get(id string) *LessonSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	s.lastSeen[id] = time.Now()
	return sess
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// CleanupExpired drops sessions idle past the ttl and returns how many were
// removed.
func (s *Store) CleanupExpired() int {
	cutoff := time.Now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, seen := range s.lastSeen {
		if seen.Before(cutoff) {
			delete(s.sessions, id)
			delete(s.lastSeen, id)
			removed++
		}
	}
	return removed
}
