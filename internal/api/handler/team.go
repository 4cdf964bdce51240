package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scoremate/scoremate/internal/api/middleware"
	"github.com/scoremate/scoremate/internal/api/response"
	"github.com/scoremate/scoremate/internal/api/validation"
	"github.com/scoremate/scoremate/internal/scoreboard"
	"github.com/scoremate/scoremate/internal/session"
)

// addTeamRequest is the request body for POST /sessions/{id}/teams.
type addTeamRequest struct {
	Name string `json:"name"`
}

// addScoreRequest is the request body for POST /sessions/{id}/teams/{index}/score.
type addScoreRequest struct {
	Points *int `json:"points"`
}

// parseIndex resolves an {index} URL parameter. On failure it writes the
// error response and returns false.
func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	requestID := middleware.GetRequestID(r.Context())

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_INDEX", "index must be an integer", requestID)
		return 0, false
	}
	return index, true
}

// TeamHandler handles team endpoints within a session.
type TeamHandler struct {
	store session.Store
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(store session.Store) *TeamHandler {
	return &TeamHandler{store: store}
}

// Add handles POST /sessions/{id}/teams.
func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req addTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateAddTeamRequest(validation.AddTeamRequest{Name: req.Name})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	var (
		addErr   error
		maxTeams int
	)
	sess.Do(func(l *scoreboard.Ledger) {
		maxTeams = l.Config().MaxTeams
		_, addErr = l.AddTeam(req.Name)
	})

	if addErr != nil {
		switch {
		case errors.Is(addErr, scoreboard.ErrEmptyTeamName):
			response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed",
				[]validation.FieldError{{Field: "name", Message: "name is required"}}, requestID)
		case errors.Is(addErr, scoreboard.ErrCapacityExceeded):
			response.Err(w, http.StatusConflict, "CAPACITY_EXCEEDED",
				fmt.Sprintf("Cannot add more than %d teams for this game", maxTeams), requestID)
		default:
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add team", requestID)
		}
		return
	}

	response.Success(w, http.StatusCreated, toSessionResponse(sess), requestID)
}

// Remove handles DELETE /sessions/{id}/teams/{index}.
func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	var removeErr error
	sess.Do(func(l *scoreboard.Ledger) {
		removeErr = l.RemoveTeam(index)
	})

	if removeErr != nil {
		if errors.Is(removeErr, scoreboard.ErrInvalidReference) {
			response.Err(w, http.StatusNotFound, "INVALID_REFERENCE", "No team at that index", requestID)
			return
		}
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove team", requestID)
		return
	}

	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}

// AddScore handles POST /sessions/{id}/teams/{index}/score.
//
// A points delta aimed at an index with no team behind it is deliberately
// not an error: the ledger ignores it and the unchanged session view is
// returned, which mirrors how a scorekeeper's stale click should behave.
func (h *TeamHandler) AddScore(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req addScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateAddScoreRequest(validation.AddScoreRequest{Points: req.Points})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	sess.Do(func(l *scoreboard.Ledger) {
		l.AddScore(index, *req.Points)
	})

	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}
