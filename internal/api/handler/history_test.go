package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoremate/scoremate/internal/api/handler"
	"github.com/scoremate/scoremate/internal/scoreboard"
	"github.com/scoremate/scoremate/internal/session"
)

func addScore(sess *session.Session, index, points int) {
	sess.Do(func(l *scoreboard.Ledger) {
		l.AddScore(index, points)
	})
}

// ===== GET /sessions/{id}/history =====

func TestHistoryList(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	addTeam(t, sess, "A")
	addScore(sess, 0, 10)
	addScore(sess, 0, 25)
	h := handler.NewHistoryHandler(store)

	req, w := makeChiRequest(http.MethodGet, "/sessions/"+sess.ID.String()+"/history", nil, sessionParams(sess, nil))

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})

	entries := data["entries"].([]interface{})
	require.Len(t, entries, 3)

	first := entries[0].(map[string]interface{})
	assert.Nil(t, first["changedTeamIndex"])

	second := entries[1].(map[string]interface{})
	assert.Equal(t, float64(0), second["changedTeamIndex"])
	diffs := second["diffs"].([]interface{})
	assert.Equal(t, float64(10), diffs[0])

	third := entries[2].(map[string]interface{})
	diffs = third["diffs"].([]interface{})
	assert.Equal(t, float64(25), diffs[0])

	totals := data["totals"].([]interface{})
	require.Len(t, totals, 1)
	assert.Equal(t, float64(35), totals[0])
}

// ===== PATCH /sessions/{id}/history/{index} =====

func TestHistoryEditScore_ReplaysFollowingRounds(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	addTeam(t, sess, "A")
	addScore(sess, 0, 10)
	addScore(sess, 0, 20)
	h := handler.NewHistoryHandler(store)

	body, _ := json.Marshal(map[string]interface{}{"teamIndex": 0, "score": 5})
	req, w := makeChiRequest(http.MethodPatch, "/sessions/"+sess.ID.String()+"/history/1", body,
		sessionParams(sess, map[string]string{"index": "1"}))

	h.EditScore(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	teams := data["teams"].([]interface{})
	team := teams[0].(map[string]interface{})
	assert.Equal(t, float64(25), team["score"])
}

func TestHistoryEditScore_InvalidReference(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	addTeam(t, sess, "A")
	h := handler.NewHistoryHandler(store)

	body, _ := json.Marshal(map[string]interface{}{"teamIndex": 0, "score": 5})
	req, w := makeChiRequest(http.MethodPatch, "/sessions/"+sess.ID.String()+"/history/9", body,
		sessionParams(sess, map[string]string{"index": "9"}))

	h.EditScore(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_REFERENCE", errObj["code"])
}

func TestHistoryEditScore_MissingFields(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	addTeam(t, sess, "A")
	h := handler.NewHistoryHandler(store)

	body, _ := json.Marshal(map[string]interface{}{"teamIndex": 0})
	req, w := makeChiRequest(http.MethodPatch, "/sessions/"+sess.ID.String()+"/history/0", body,
		sessionParams(sess, map[string]string{"index": "0"}))

	h.EditScore(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
}

// ===== PATCH /sessions/{id}/history/{index}/phase =====

func TestHistoryEditPhase(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	addTeam(t, sess, "A")
	h := handler.NewHistoryHandler(store)

	body, _ := json.Marshal(map[string]interface{}{"name": "opening"})
	req, w := makeChiRequest(http.MethodPatch, "/sessions/"+sess.ID.String()+"/history/0/phase", body,
		sessionParams(sess, map[string]string{"index": "0"}))

	h.EditPhase(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var label string
	sess.View(func(l *scoreboard.Ledger) {
		label = l.History()[0].PhaseIdentifier
	})
	assert.Equal(t, "opening", label)
}

func TestHistoryEditPhase_InvalidReference(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	h := handler.NewHistoryHandler(store)

	body, _ := json.Marshal(map[string]interface{}{"name": "opening"})
	req, w := makeChiRequest(http.MethodPatch, "/sessions/"+sess.ID.String()+"/history/3/phase", body,
		sessionParams(sess, map[string]string{"index": "3"}))

	h.EditPhase(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
