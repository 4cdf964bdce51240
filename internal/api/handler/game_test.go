package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoremate/scoremate/internal/api/handler"
	"github.com/scoremate/scoremate/internal/gameconfig"
	"github.com/scoremate/scoremate/internal/scoreboard"
)

// ===== POST /sessions/{id}/restart =====

func TestGameRestart(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	addTeam(t, sess, "A")
	addScore(sess, 0, 200)
	h := handler.NewGameHandler(store, gameconfig.NewBuiltinRegistry())

	req, w := makeChiRequest(http.MethodPost, "/sessions/"+sess.ID.String()+"/restart", nil, sessionParams(sess, nil))

	h.Restart(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	teams := data["teams"].([]interface{})
	team := teams[0].(map[string]interface{})
	assert.Equal(t, "A", team["name"])
	assert.Equal(t, float64(0), team["score"])
	assert.Nil(t, data["alert"])
	// History retains the pre-restart rounds plus the restart marker.
	assert.Equal(t, float64(3), data["rounds"])
}

// ===== POST /sessions/{id}/game =====

func TestGameNew(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	addTeam(t, sess, "A")
	addScore(sess, 0, 50)
	h := handler.NewGameHandler(store, gameconfig.NewBuiltinRegistry())

	req, w := makeChiRequest(http.MethodPost, "/sessions/"+sess.ID.String()+"/game", nil, sessionParams(sess, nil))

	h.NewGame(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Empty(t, data["teams"])
	assert.Equal(t, float64(0), data["rounds"])
	config := data["config"].(map[string]interface{})
	assert.Equal(t, "domino", config["value"])
}

// ===== GET /sessions/{id}/export + POST /sessions/{id}/import =====

func TestGameExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	source := createDominoSession(t, store)
	addTeam(t, source, "A")
	addTeam(t, source, "B")
	addScore(source, 0, 50)
	h := handler.NewGameHandler(store, gameconfig.NewBuiltinRegistry())

	req, w := makeChiRequest(http.MethodGet, "/sessions/"+source.ID.String()+"/export", nil, sessionParams(source, nil))
	h.Export(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	// The exported document is raw, not enveloped.
	var exported scoreboard.ExportedGame
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exported))
	assert.Equal(t, "domino", exported.GameConfigValue)
	require.Len(t, exported.Teams, 2)

	// Post the same bytes into a fresh session.
	target := createDominoSession(t, store)
	req, w = makeChiRequest(http.MethodPost, "/sessions/"+target.ID.String()+"/import", w.Body.Bytes(), sessionParams(target, nil))
	h.Import(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	teams := data["teams"].([]interface{})
	require.Len(t, teams, 2)
	team := teams[0].(map[string]interface{})
	assert.Equal(t, "A", team["name"])
	assert.Equal(t, float64(50), team["score"])
	assert.Equal(t, float64(3), data["rounds"])
}

func TestGameImport_MalformedBody(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	h := handler.NewGameHandler(store, gameconfig.NewBuiltinRegistry())

	req, w := makeChiRequest(http.MethodPost, "/sessions/"+sess.ID.String()+"/import", []byte("not json"), sessionParams(sess, nil))
	h.Import(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "MALFORMED_IMPORT", errObj["code"])
}

func TestGameImport_MissingFields(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	h := handler.NewGameHandler(store, gameconfig.NewBuiltinRegistry())

	body, _ := json.Marshal(map[string]interface{}{"gameConfigValue": "domino"})
	req, w := makeChiRequest(http.MethodPost, "/sessions/"+sess.ID.String()+"/import", body, sessionParams(sess, nil))
	h.Import(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "MALFORMED_IMPORT", errObj["code"])
}

func TestGameImport_UnknownConfig(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	sess := createDominoSession(t, store)
	h := handler.NewGameHandler(store, gameconfig.NewBuiltinRegistry())

	body, _ := json.Marshal(map[string]interface{}{
		"gameConfigValue": "chess",
		"teams":           []interface{}{},
		"history":         []interface{}{},
		"gameVersion":     "1.0",
	})
	req, w := makeChiRequest(http.MethodPost, "/sessions/"+sess.ID.String()+"/import", body, sessionParams(sess, nil))
	h.Import(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "UNKNOWN_CONFIG", errObj["code"])
}
