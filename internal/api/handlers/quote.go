package handlers

import (
	"errors"
	"net/http"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/api/response"
	"github.com/insiderpocket/backend/internal/service"
)

// QuoteHandler handles quote HTTP requests. It is a thin adapter over
// the quote service, which owns routing, caching, and fallbacks.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Quote handles GET /api/quote?ticker=<T>.
//
// Response: 200 OK with a Quote, possibly zero-valued with an error
// field when the upstream failed. 400 when the ticker is missing, 500
// when the market-data API key is not configured.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	rawTicker := r.URL.Query().Get("ticker")
	if rawTicker == "" {
		response.RespondError(w, http.StatusBadRequest, "Ticker is required", nil)
		return
	}

	quote, err := h.quoteService.GetQuote(r.Context(), rawTicker)
	if err != nil {
		if errors.Is(err, apperrors.ErrTickerRequired) {
			response.RespondError(w, http.StatusBadRequest, "Ticker is required", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "API Key missing", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, quote)
}
