package session

import (
	"context"
	"log/slog"
	"time"
)

// Janitor periodically removes sessions that have been idle longer than the
// configured TTL.
type Janitor struct {
	store    *MemoryStore
	ttl      time.Duration
	interval time.Duration
}

// NewJanitor creates a Janitor over the given store.
func NewJanitor(store *MemoryStore, ttl, interval time.Duration) *Janitor {
	return &Janitor{store: store, ttl: ttl, interval: interval}
}

// Start begins the sweep loop. It blocks until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	slog.Info("session janitor started", "ttl", j.ttl.String(), "interval", j.interval.String())
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	cutoff := time.Now().UTC().Add(-j.ttl)
	for _, sess := range j.store.List() {
		if sess.UpdatedAt().Before(cutoff) {
			if err := j.store.Delete(sess.ID); err != nil {
				continue
			}
			slog.Info("expired idle session", "sessionId", sess.ID, "lastActivity", sess.UpdatedAt())
		}
	}
}
