package session

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/scoremate/scoremate/internal/scoreboard"
)

// ErrSessionNotFound is returned when no session matches the given ID.
var ErrSessionNotFound = errors.New("session not found")

// ErrStoreFull is returned when creating a session beyond the store's
// capacity.
var ErrStoreFull = errors.New("session store is full")

// Store manages the live sessions of this process.
type Store interface {
	Create(ledger *scoreboard.Ledger) (*Session, error)
	Get(id uuid.UUID) (*Session, error)
	List() []*Session
	Delete(id uuid.UUID) error
}

// MemoryStore is the in-memory Store. Sessions live for the lifetime of the
// process; export/import is the only way state crosses a restart.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[uuid.UUID]*Session
	maxSessions int
}

// NewMemoryStore creates a MemoryStore holding at most maxSessions
// sessions. A non-positive limit means unlimited.
func NewMemoryStore(maxSessions int) *MemoryStore {
	return &MemoryStore{
		sessions:    make(map[uuid.UUID]*Session),
		maxSessions: maxSessions,
	}
}

// Create registers a new session wrapping the given ledger.
func (s *MemoryStore) Create(ledger *scoreboard.Ledger) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return nil, ErrStoreFull
	}
	sess := newSession(ledger)
	s.sessions[sess.ID] = sess
	return sess, nil
}

// Get retrieves a session by ID.
func (s *MemoryStore) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// List returns all sessions ordered by creation time.
func (s *MemoryStore) List() []*Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Delete removes a session by ID.
func (s *MemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}
