package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoremate/scoremate/internal/session"
)

func TestJanitor_ExpiresIdleSessions(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(10)
	sess, err := store.Create(newLedger())
	require.NoError(t, err)

	janitor := session.NewJanitor(store, time.Millisecond, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go janitor.Start(ctx)

	assert.Eventually(t, func() bool {
		_, err := store.Get(sess.ID)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestJanitor_KeepsActiveSessions(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore(10)
	sess, err := store.Create(newLedger())
	require.NoError(t, err)

	janitor := session.NewJanitor(store, time.Hour, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go janitor.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	_, err = store.Get(sess.ID)
	assert.NoError(t, err)
}
