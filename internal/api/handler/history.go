package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scoremate/scoremate/internal/api/middleware"
	"github.com/scoremate/scoremate/internal/api/response"
	"github.com/scoremate/scoremate/internal/api/validation"
	"github.com/scoremate/scoremate/internal/scoreboard"
	"github.com/scoremate/scoremate/internal/session"
)

// editScoreRequest is the request body for PATCH /sessions/{id}/history/{index}.
type editScoreRequest struct {
	TeamIndex *int `json:"teamIndex"`
	Score     *int `json:"score"`
}

// editPhaseRequest is the request body for PATCH /sessions/{id}/history/{index}/phase.
type editPhaseRequest struct {
	Name string `json:"name"`
}

// historyEntryResponse is the API representation of one recorded round,
// enriched with the per-round point differences.
type historyEntryResponse struct {
	Index            int            `json:"index"`
	Snapshot         []teamResponse `json:"snapshot"`
	ChangedTeamIndex *int           `json:"changedTeamIndex"`
	PhaseIdentifier  string         `json:"phaseIdentifier,omitempty"`
	Diffs            []int          `json:"diffs"`
}

// historyResponse is the response body for GET /sessions/{id}/history.
type historyResponse struct {
	Entries []historyEntryResponse `json:"entries"`
	Totals  []int                  `json:"totals"`
}

func toHistoryResponse(history []scoreboard.HistoryEntry, teamCount int) historyResponse {
	entries := make([]historyEntryResponse, 0, len(history))
	for i, entry := range history {
		snapshot := make([]teamResponse, 0, len(entry.Snapshot))
		diffs := make([]int, 0, len(entry.Snapshot))
		for t, team := range entry.Snapshot {
			snapshot = append(snapshot, teamResponse{
				Index: t,
				ID:    team.ID.String(),
				Name:  team.Name,
				Score: team.Score,
			})
			diff, err := scoreboard.ScoreDiff(history, i, t)
			if err != nil {
				diff = 0
			}
			diffs = append(diffs, diff)
		}
		entries = append(entries, historyEntryResponse{
			Index:            i,
			Snapshot:         snapshot,
			ChangedTeamIndex: entry.ChangedTeamIndex,
			PhaseIdentifier:  entry.PhaseIdentifier,
			Diffs:            diffs,
		})
	}
	return historyResponse{
		Entries: entries,
		Totals:  scoreboard.TeamTotals(history, teamCount),
	}
}

// HistoryHandler handles round-history endpoints within a session.
type HistoryHandler struct {
	store session.Store
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(store session.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List handles GET /sessions/{id}/history.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	sess, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var resp historyResponse
	sess.View(func(l *scoreboard.Ledger) {
		resp = toHistoryResponse(l.History(), len(l.Teams()))
	})

	response.SuccessList(w, http.StatusOK, resp, len(resp.Entries), requestID)
}

// EditScore handles PATCH /sessions/{id}/history/{index}. It rewrites one
// team's score in a past round and replays the rounds after it.
func (h *HistoryHandler) EditScore(w http.ResponseWriter, r *http.Request) {
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
	var req editScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateEditScoreRequest(validation.EditScoreRequest{
		TeamIndex: req.TeamIndex,
		Score:     req.Score,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	var editErr error
	sess.Do(func(l *scoreboard.Ledger) {
		editErr = l.EditScoreInHistory(index, *req.TeamIndex, *req.Score)
	})

	if editErr != nil {
		if errors.Is(editErr, scoreboard.ErrInvalidReference) {
			response.Err(w, http.StatusNotFound, "INVALID_REFERENCE", "No such round or team in the history", requestID)
			return
		}
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to edit history", requestID)
		return
	}

	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}

// EditPhase handles PATCH /sessions/{id}/history/{index}/phase. A blank
// name clears the round's phase label.
func (h *HistoryHandler) EditPhase(w http.ResponseWriter, r *http.Request) {
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
	var req editPhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateEditPhaseRequest(validation.EditPhaseRequest{Name: req.Name})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	var editErr error
	sess.Do(func(l *scoreboard.Ledger) {
		editErr = l.SetPhaseIdentifier(index, req.Name)
	})

	if editErr != nil {
		if errors.Is(editErr, scoreboard.ErrInvalidReference) {
			response.Err(w, http.StatusNotFound, "INVALID_REFERENCE", "No such round in the history", requestID)
			return
		}
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to edit history", requestID)
		return
	}

	response.Success(w, http.StatusOK, toSessionResponse(sess), requestID)
}
