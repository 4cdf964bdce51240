package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/scoremate/scoremate/internal/api/middleware"
	"github.com/scoremate/scoremate/internal/api/response"
	"github.com/scoremate/scoremate/internal/gameconfig"
	"github.com/scoremate/scoremate/internal/scoreboard"
	"github.com/scoremate/scoremate/internal/session"
)

// GameHandler handles whole-game operations within a session: restart, new
// game, and the export/import boundary.
type GameHandler struct {
	store    session.Store
	registry gameconfig.Registry
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(store session.Store, registry gameconfig.Registry) *GameHandler {
	return &GameHandler{store: store, registry: registry}
}

// Restart handles POST /sessions/{id}/restart. Scores reset to zero, team
// names survive, and the reset is recorded in the history.
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	sess.Do(func(l *scoreboard.Ledger) {
		l.RestartGame()
	})

	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}

// NewGame handles POST /sessions/{id}/game. Teams and history are wiped;
// the configuration stays.
func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	sess.Do(func(l *scoreboard.Ledger) {
		l.NewGame()
	})

	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}

// Export handles GET /sessions/{id}/export. The exported game is served as
// a raw downloadable document, not wrapped in the response envelope, so the
// same bytes can be posted back to the import endpoint.
func (h *GameHandler) Export(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var data scoreboard.ExportedGame
	sess.View(func(l *scoreboard.Ledger) {
		data = l.Export()
	})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "scoremate-"+sess.ID.String()+".json"))
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to write export response", "error", err, "requestId", requestID)
	}
}

// Import handles POST /sessions/{id}/import. The body is an exported game
// document; on success it replaces the session's configuration, teams, and
// history in one step.
func (h *GameHandler) Import(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var data scoreboard.ExportedGame
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		response.Err(w, http.StatusBadRequest, "MALFORMED_IMPORT", "Body must be a valid exported game document", requestID)
		return
	}

	var importErr error
	sess.Do(func(l *scoreboard.Ledger) {
		importErr = l.Import(data, h.registry)
	})

	if importErr != nil {
		var malformed *scoreboard.MalformedImportError
		switch {
		case errors.As(importErr, &malformed):
			response.Err(w, http.StatusBadRequest, "MALFORMED_IMPORT", malformed.Reason, requestID)
		case errors.Is(importErr, gameconfig.ErrConfigNotFound):
			response.Err(w, http.StatusNotFound, "UNKNOWN_CONFIG",
				fmt.Sprintf("Game configuration %q not found", data.GameConfigValue), requestID)
		default:
			slog.Error("failed to import game data", "error", importErr, "id", sess.ID)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to import game data", requestID)
		}
		return
	}

	slog.Info("game data imported", "sessionId", sess.ID, "config", data.GameConfigValue)
	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}
