package handler

import (
	"net/http"

	"github.com/scoremate/scoremate/internal/api/middleware"
	"github.com/scoremate/scoremate/internal/api/response"
	"github.com/scoremate/scoremate/internal/gameconfig"
)

// ConfigHandler handles the GET /configs endpoint.
type ConfigHandler struct {
	registry gameconfig.Registry
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(registry gameconfig.Registry) *ConfigHandler {
	return &ConfigHandler{registry: registry}
}

// List handles GET /configs.
func (h *ConfigHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	configs := h.registry.List()
	response.SuccessList(w, http.StatusOK, configs, len(configs), requestID)
}
