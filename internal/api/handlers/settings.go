package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/insiderpocket/backend/internal/api/response"
	"github.com/insiderpocket/backend/internal/service"
)

// SettingsHandler handles settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// SetAPIKeyRequest represents the request body for storing the
// market-data API key.
type SetAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

// SetAPIKey handles PUT /api/settings/api-key. The key is stored
// encrypted and applied to the running client immediately.
func (h *SettingsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req SetAPIKeyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.settingsService.SetAPIKey(req.APIKey); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "Failed to store API key", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
