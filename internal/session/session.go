package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scoremate/scoremate/internal/scoreboard"
)

// Session binds one ledger to an ID addressable over the API. The ledger
// itself is single-writer; the session's mutex serializes HTTP requests so
// that property holds under concurrent callers.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu        sync.Mutex
	ledger    *scoreboard.Ledger
	updatedAt time.Time
}

func newSession(ledger *scoreboard.Ledger) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		ledger:    ledger,
		updatedAt: now,
	}
}

// Do runs fn with exclusive access to the ledger and marks the session as
// touched. Use it for every mutating operation.
func (s *Session) Do(fn func(l *scoreboard.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
	s.updatedAt = time.Now().UTC()
}

// View runs fn with exclusive access to the ledger without marking the
// session as touched. Use it for reads.
func (s *Session) View(fn func(l *scoreboard.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
}

// UpdatedAt reports when the session last ran a mutating operation.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}
