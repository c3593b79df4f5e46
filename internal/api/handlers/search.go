package handlers

import (
	"net/http"

	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/service"
)

// SearchHandler handles ticker search HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchResponse is the search endpoint payload. FromFallback is only
// present when the static local list served the results.
type SearchResponse struct {
	Results      []model.SearchResult `json:"results"`
	FromFallback bool                 `json:"fromFallback,omitempty"`
}

// Search handles GET /api/search?q=<query>. Short queries return an
// empty result set; upstream failure switches to the local fallback
// list, never an error response.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	outcome := h.searchService.Search(r.Context(), r.URL.Query().Get("q"))

	respondJSON(w, http.StatusOK, SearchResponse{
		Results:      outcome.Results,
		FromFallback: outcome.FromFallback,
	})
}
