package handler

import (
	"net/http"

	"github.com/scoremate/scoremate/internal/api/middleware"
	"github.com/scoremate/scoremate/internal/api/response"
	"github.com/scoremate/scoremate/internal/session"
)

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	store   session.Store
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store session.Store, version string) *HealthHandler {
	return &HealthHandler{store: store, version: version}
}

type healthData struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	data := healthData{
		Status:   "healthy",
		Version:  h.version,
		Sessions: len(h.store.List()),
	}

	response.Success(w, http.StatusOK, data, requestID)
}
