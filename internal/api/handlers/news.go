package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/api/response"
	"github.com/insiderpocket/backend/internal/service"
)

// NewsHandler handles news HTTP requests
type NewsHandler struct {
	newsService *service.NewsService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(newsService *service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// News handles GET /api/news.
//
// Two modes share the endpoint: ?tickers=<comma-list> serves portfolio
// company news, anything else serves category-based market news
// (?category=, default "general"). Upstream failures degrade to an
// empty list; only a missing API key is a protocol-level error.
func (h *NewsHandler) News(w http.ResponseWriter, r *http.Request) {
	if tickers := r.URL.Query().Get("tickers"); tickers != "" {
		items, err := h.newsService.GetPortfolioNews(r.Context(), strings.Split(tickers, ","))
		if err != nil {
			h.respondNewsError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
		return
	}

	items, err := h.newsService.GetGeneralNews(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.respondNewsError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) respondNewsError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrAPIKeyMissing) {
		response.RespondError(w, http.StatusInternalServerError, "API Key missing", nil)
		return
	}
	response.RespondError(w, http.StatusInternalServerError, "Failed to fetch news", err.Error())
}
