package service

import (
	"context"
	"log"
	"strings"

	"github.com/insiderpocket/backend/internal/model"
)

// SymbolSearcher runs a free-text instrument search upstream.
type SymbolSearcher interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// SearchService resolves ticker searches, falling back to a static
// local list when the upstream search is unavailable or rate-limited.
type SearchService struct {
	searcher SymbolSearcher
}

// SearchOutcome is a search result list plus whether it came from the
// local fallback list.
type SearchOutcome struct {
	Results      []model.SearchResult
	FromFallback bool
}

// NewSearchService creates a SearchService with the provided searcher.
func NewSearchService(searcher SymbolSearcher) *SearchService {
	return &SearchService{searcher: searcher}
}

// Search runs a symbol search. Queries shorter than two characters
// return an empty result set. Upstream failure switches to an
// approximate match against the local fallback list; the user is never
// shown a raw error.
func (s *SearchService) Search(ctx context.Context, query string) SearchOutcome {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return SearchOutcome{Results: []model.SearchResult{}}
	}

	results, err := s.searcher.Search(ctx, query)
	if err == nil && len(results) > 0 {
		return SearchOutcome{Results: results}
	}
	if err != nil {
		log.Printf("search: upstream failed for %q, using fallback: %v", query, err)
	}

	return SearchOutcome{
		Results:      searchFallback(query),
		FromFallback: true,
	}
}

// searchFallback filters the static list for symbol or name matches.
func searchFallback(query string) []model.SearchResult {
	q := strings.ToLower(query)
	matches := []model.SearchResult{}
	for _, stock := range fallbackStocks {
		if strings.Contains(strings.ToLower(stock.Symbol), q) ||
			strings.Contains(strings.ToLower(stock.ShortName), q) {
			matches = append(matches, stock)
		}
	}
	return matches
}
