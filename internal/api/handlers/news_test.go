package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/insiderpocket/backend/internal/api/handlers"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/testutil"
)

func TestNewsHandler_News(t *testing.T) {
	t.Run("serves general news without parameters", func(t *testing.T) {
		// Setup
		fetcher := testutil.NewMockUSFetcher()
		fetcher.MarketNews = []model.NewsItem{{ID: 1, Headline: "Markets rally"}}
		handler := handlers.NewNewsHandler(testutil.NewTestNewsService(t, fetcher))

		req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
		rec := httptest.NewRecorder()

		// Execute
		handler.News(rec, req)

		// Assert
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var items []model.NewsItem
		if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(items) != 1 {
			t.Errorf("Expected 1 item, got %d", len(items))
		}
	})

	t.Run("tickers parameter switches to portfolio mode", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.CompanyNews = map[string][]model.NewsItem{
			"AAPL": {{ID: 1, Ticker: "AAPL"}},
			"MSFT": {{ID: 2, Ticker: "MSFT"}},
		}
		handler := handlers.NewNewsHandler(testutil.NewTestNewsService(t, fetcher))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/news", map[string]string{"tickers": "AAPL,MSFT"})
		rec := httptest.NewRecorder()

		handler.News(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var items []model.NewsItem
		if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(items) != 2 {
			t.Errorf("Expected 2 items, got %d", len(items))
		}
	})

	t.Run("missing API key returns 500", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.Key = ""
		handler := handlers.NewNewsHandler(testutil.NewTestNewsService(t, fetcher))

		req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
		rec := httptest.NewRecorder()

		handler.News(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", rec.Code)
		}
	})
}
