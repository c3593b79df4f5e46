package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/service"
	"github.com/insiderpocket/backend/internal/testutil"
)

func TestNewsService_GetGeneralNews(t *testing.T) {
	t.Run("general category is cached", func(t *testing.T) {
		// Setup
		fetcher := testutil.NewMockUSFetcher()
		fetcher.MarketNews = []model.NewsItem{{ID: 1, Headline: "Markets rally"}}
		svc := testutil.NewTestNewsService(t, fetcher)

		// Execute: two identical requests
		for i := 0; i < 2; i++ {
			items, err := svc.GetGeneralNews(context.Background(), "general")
			if err != nil {
				t.Fatalf("GetGeneralNews() returned unexpected error: %v", err)
			}
			if len(items) != 1 {
				t.Fatalf("Expected 1 item, got %d", len(items))
			}
		}

		// Assert: only one upstream fetch
		if fetcher.NewsCalls != 1 {
			t.Errorf("Expected 1 upstream call, got %d", fetcher.NewsCalls)
		}
	})

	t.Run("other categories are not cached", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.MarketNews = []model.NewsItem{{ID: 1}}
		svc := testutil.NewTestNewsService(t, fetcher)

		for i := 0; i < 2; i++ {
			if _, err := svc.GetGeneralNews(context.Background(), "crypto"); err != nil {
				t.Fatalf("GetGeneralNews() returned unexpected error: %v", err)
			}
		}

		if fetcher.NewsCalls != 2 {
			t.Errorf("Expected 2 upstream calls for uncached category, got %d", fetcher.NewsCalls)
		}
	})

	t.Run("empty category defaults to general", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.MarketNews = []model.NewsItem{{ID: 1}}
		svc := testutil.NewTestNewsService(t, fetcher)

		if _, err := svc.GetGeneralNews(context.Background(), ""); err != nil {
			t.Fatalf("GetGeneralNews() returned unexpected error: %v", err)
		}
		// Cached under "general": an explicit request hits the cache.
		if _, err := svc.GetGeneralNews(context.Background(), "general"); err != nil {
			t.Fatalf("GetGeneralNews() returned unexpected error: %v", err)
		}

		if fetcher.NewsCalls != 1 {
			t.Errorf("Expected 1 upstream call, got %d", fetcher.NewsCalls)
		}
	})

	t.Run("upstream failure degrades to an empty list", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.NewsErr = errors.New("upstream down")
		svc := testutil.NewTestNewsService(t, fetcher)

		items, err := svc.GetGeneralNews(context.Background(), "general")

		if err != nil {
			t.Fatalf("Expected degraded empty list, got error %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected empty list, got %d items", len(items))
		}
	})

	t.Run("missing API key is a hard error", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.Key = ""
		svc := testutil.NewTestNewsService(t, fetcher)

		_, err := svc.GetGeneralNews(context.Background(), "general")

		if !errors.Is(err, apperrors.ErrAPIKeyMissing) {
			t.Errorf("Expected ErrAPIKeyMissing, got %v", err)
		}
	})

	t.Run("result is capped", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		for i := 0; i < service.MaxNewsItems+10; i++ {
			fetcher.MarketNews = append(fetcher.MarketNews, model.NewsItem{ID: int64(i)})
		}
		svc := testutil.NewTestNewsService(t, fetcher)

		items, err := svc.GetGeneralNews(context.Background(), "general")

		if err != nil {
			t.Fatalf("GetGeneralNews() returned unexpected error: %v", err)
		}
		if len(items) != service.MaxNewsItems {
			t.Errorf("Expected %d items, got %d", service.MaxNewsItems, len(items))
		}
	})
}

// TestNewsService_GetPortfolioNews tests the fan-out, merge, and cache
// behavior of portfolio-scoped news.
func TestNewsService_GetPortfolioNews(t *testing.T) {
	t.Run("merges, dedupes, and sorts by descending time", func(t *testing.T) {
		// Setup: overlapping article 2 appears for both tickers
		fetcher := testutil.NewMockUSFetcher()
		fetcher.CompanyNews = map[string][]model.NewsItem{
			"AAPL": {
				{ID: 1, Datetime: 1000, Ticker: "AAPL"},
				{ID: 2, Datetime: 3000, Ticker: "AAPL"},
			},
			"MSFT": {
				{ID: 2, Datetime: 3000, Ticker: "MSFT"},
				{ID: 3, Datetime: 2000, Ticker: "MSFT"},
			},
		}
		svc := testutil.NewTestNewsService(t, fetcher)

		// Execute
		items, err := svc.GetPortfolioNews(context.Background(), []string{"AAPL", "MSFT"})

		// Assert
		if err != nil {
			t.Fatalf("GetPortfolioNews() returned unexpected error: %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("Expected 3 deduplicated items, got %d", len(items))
		}
		for i := 1; i < len(items); i++ {
			if items[i-1].Datetime < items[i].Datetime {
				t.Errorf("Items not sorted by descending datetime: %d before %d",
					items[i-1].Datetime, items[i].Datetime)
			}
		}
	})

	t.Run("cache key is order independent", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.CompanyNews = map[string][]model.NewsItem{
			"AAPL": {{ID: 1}},
			"MSFT": {{ID: 2}},
		}
		svc := testutil.NewTestNewsService(t, fetcher)

		if _, err := svc.GetPortfolioNews(context.Background(), []string{"MSFT", "AAPL"}); err != nil {
			t.Fatalf("GetPortfolioNews() returned unexpected error: %v", err)
		}
		callsAfterFirst := fetcher.NewsCalls

		if _, err := svc.GetPortfolioNews(context.Background(), []string{"aapl", "msft"}); err != nil {
			t.Fatalf("GetPortfolioNews() returned unexpected error: %v", err)
		}

		if fetcher.NewsCalls != callsAfterFirst {
			t.Errorf("Expected cache hit for reordered tickers, got %d extra calls",
				fetcher.NewsCalls-callsAfterFirst)
		}
	})

	t.Run("Nordic tickers are skipped", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.CompanyNews = map[string][]model.NewsItem{
			"AAPL": {{ID: 1}},
		}
		svc := testutil.NewTestNewsService(t, fetcher)

		items, err := svc.GetPortfolioNews(context.Background(), []string{"AAPL", "VOLV-B.ST"})

		if err != nil {
			t.Fatalf("GetPortfolioNews() returned unexpected error: %v", err)
		}
		if fetcher.NewsCalls != 1 {
			t.Errorf("Expected 1 upstream call (Nordic skipped), got %d", fetcher.NewsCalls)
		}
		if len(items) != 1 {
			t.Errorf("Expected 1 item, got %d", len(items))
		}
	})

	t.Run("ticker list is capped", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.CompanyNews = map[string][]model.NewsItem{}
		svc := testutil.NewTestNewsService(t, fetcher)

		var tickers []string
		for i := 0; i < service.MaxNewsTickers+3; i++ {
			tickers = append(tickers, fmt.Sprintf("TICK%d", i))
		}

		if _, err := svc.GetPortfolioNews(context.Background(), tickers); err != nil {
			t.Fatalf("GetPortfolioNews() returned unexpected error: %v", err)
		}

		if fetcher.NewsCalls != service.MaxNewsTickers {
			t.Errorf("Expected %d upstream calls, got %d", service.MaxNewsTickers, fetcher.NewsCalls)
		}
	})

	t.Run("empty ticker list returns empty without fetching", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		svc := testutil.NewTestNewsService(t, fetcher)

		items, err := svc.GetPortfolioNews(context.Background(), nil)

		if err != nil {
			t.Fatalf("GetPortfolioNews() returned unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected empty list, got %d items", len(items))
		}
		if fetcher.NewsCalls != 0 {
			t.Errorf("Expected 0 upstream calls, got %d", fetcher.NewsCalls)
		}
	})

	t.Run("per-ticker failure degrades to fewer items", func(t *testing.T) {
		fetcher := testutil.NewMockUSFetcher()
		fetcher.NewsErr = errors.New("company news down")
		svc := testutil.NewTestNewsService(t, fetcher)

		items, err := svc.GetPortfolioNews(context.Background(), []string{"AAPL"})

		if err != nil {
			t.Fatalf("Expected degraded result, got error %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected empty list, got %d items", len(items))
		}
	})
}
