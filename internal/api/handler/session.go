package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/scoremate/scoremate/internal/api/middleware"
	"github.com/scoremate/scoremate/internal/api/response"
	"github.com/scoremate/scoremate/internal/api/validation"
	"github.com/scoremate/scoremate/internal/gameconfig"
	"github.com/scoremate/scoremate/internal/scoreboard"
	"github.com/scoremate/scoremate/internal/session"
)

// createSessionRequest is the request body for POST /sessions.
type createSessionRequest struct {
	ConfigValue string `json:"configValue"`
}

// teamResponse is the API representation of one team.
type teamResponse struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// sessionResponse is the API representation of one session.
type sessionResponse struct {
	ID        string                `json:"id"`
	Config    gameconfig.GameConfig `json:"config"`
	Teams     []teamResponse        `json:"teams"`
	Alert     *scoreboard.GameAlert `json:"alert"`
	Rounds    int                   `json:"rounds"`
	CreatedAt string                `json:"createdAt"`
	UpdatedAt string                `json:"updatedAt"`
}

func toSessionResponse(sess *session.Session) sessionResponse {
	var resp sessionResponse
	sess.View(func(l *scoreboard.Ledger) {
		teams := l.Teams()
		items := make([]teamResponse, 0, len(teams))
		for i, t := range teams {
			items = append(items, teamResponse{
				Index: i,
				ID:    t.ID.String(),
				Name:  t.Name,
				Score: t.Score,
			})
		}
		resp = sessionResponse{
			ID:     sess.ID.String(),
			Config: l.Config(),
			Teams:  items,
			Alert:  l.Alert(),
			Rounds: len(l.History()),
		}
	})
	resp.CreatedAt = sess.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")
	resp.UpdatedAt = sess.UpdatedAt().UTC().Format("2006-01-02T15:04:05Z")
	return resp
}

// lookupSession resolves the {id} URL parameter to a stored session. On
// failure it writes the error response and returns false.
func lookupSession(w http.ResponseWriter, r *http.Request, store session.Store) (*session.Session, bool) {
	requestID := middleware.GetRequestID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return nil, false
	}

	sess, err := store.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Session not found", requestID)
			return nil, false
		}
		slog.Error("failed to get session", "error", err, "id", id)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get session", requestID)
		return nil, false
	}
	return sess, true
}

// SessionHandler handles session lifecycle endpoints.
type SessionHandler struct {
	store    session.Store
	registry gameconfig.Registry
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(store session.Store, registry gameconfig.Registry) *SessionHandler {
	return &SessionHandler{store: store, registry: registry}
}

// Create handles POST /sessions.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	req.ConfigValue = strings.TrimSpace(req.ConfigValue)

	fieldErrors := validation.ValidateCreateSessionRequest(validation.CreateSessionRequest{
		ConfigValue: req.ConfigValue,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	cfg, err := h.registry.FindByValue(req.ConfigValue)
	if err != nil {
		if errors.Is(err, gameconfig.ErrConfigNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Game configuration not found", requestID)
			return
		}
		slog.Error("failed to look up game configuration", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session", requestID)
		return
	}

	sess, err := h.store.Create(scoreboard.New(cfg))
	if err != nil {
		if errors.Is(err, session.ErrStoreFull) {
			response.Err(w, http.StatusConflict, "STORE_FULL", "Session limit reached; delete a session first", requestID)
			return
		}
		slog.Error("failed to create session", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session", requestID)
		return
	}

	slog.Info("session created", "sessionId", sess.ID, "config", cfg.Value)
	response.Success(w, http.StatusCreated, toSessionResponse(sess), requestID)
}

// List handles GET /sessions.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sessions := h.store.List()
	items := make([]sessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		items = append(items, toSessionResponse(sess))
	}
	response.SuccessList(w, http.StatusOK, items, len(items), requestID)
}

// Get handles GET /sessions/{id}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}
	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}

// Delete handles DELETE /sessions/{id}.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	if err := h.store.Delete(sess.ID); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Session not found", requestID)
			return
		}
		slog.Error("failed to delete session", "error", err, "id", sess.ID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete session", requestID)
		return
	}

	response.NoContent(w)
}
