package handlers

import (
	"errors"
	"net/http"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/api/response"
	"github.com/insiderpocket/backend/internal/service"
)

// DetailsHandler handles detail-view HTTP requests
type DetailsHandler struct {
	detailsService *service.DetailsService
}

// NewDetailsHandler creates a new DetailsHandler
func NewDetailsHandler(detailsService *service.DetailsService) *DetailsHandler {
	return &DetailsHandler{detailsService: detailsService}
}

// Details handles GET /api/details?ticker=<T>.
//
// The response is always structurally complete: a failed upstream fetch
// yields a zero-valued price block with the error field set, and
// insider data is best-effort in both regimes.
func (h *DetailsHandler) Details(w http.ResponseWriter, r *http.Request) {
	rawTicker := r.URL.Query().Get("ticker")
	if rawTicker == "" {
		response.RespondError(w, http.StatusBadRequest, "Ticker is required", nil)
		return
	}

	details, err := h.detailsService.GetDetails(r.Context(), rawTicker)
	if err != nil {
		if errors.Is(err, apperrors.ErrTickerRequired) {
			response.RespondError(w, http.StatusBadRequest, "Ticker is required", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "API Key missing", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, details)
}
