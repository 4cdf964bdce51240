package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/scoremate/scoremate/internal/gameconfig"
	"github.com/scoremate/scoremate/internal/scoreboard"
	"github.com/scoremate/scoremate/internal/session"
)

// --- Shared helpers ---

func makeChiRequest(method, path string, body []byte, params map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req, w
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

func newTestStore() *session.MemoryStore {
	return session.NewMemoryStore(10)
}

// createDominoSession seeds a store with a session playing the two-team,
// 200-point game.
func createDominoSession(t *testing.T, store session.Store) *session.Session {
	t.Helper()
	cfg, err := gameconfig.NewBuiltinRegistry().FindByValue("domino")
	require.NoError(t, err)
	sess, err := store.Create(scoreboard.New(cfg))
	require.NoError(t, err)
	return sess
}

func sessionParams(sess *session.Session, extra map[string]string) map[string]string {
	params := map[string]string{"id": sess.ID.String()}
	for k, v := range extra {
		params[k] = v
	}
	return params
}
