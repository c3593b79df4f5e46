package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/service"
	"github.com/insiderpocket/backend/internal/testutil"
)

// TestQuoteService_Routing tests that tickers reach the right upstream.
//
// WHY: A US ticker sent to Yahoo or a Nordic ticker sent to Finnhub
// returns garbage or errors. The routing decision is the core of the
// two-regime design.
func TestQuoteService_Routing(t *testing.T) {
	t.Run("US ticker uses the Finnhub fetcher", func(t *testing.T) {
		// Setup
		us := testutil.NewMockUSFetcher()
		nordic := testutil.NewMockNordicFetcher()
		svc, _ := testutil.NewTestQuoteService(t, us, nordic)

		// Execute
		quote, err := svc.GetQuote(context.Background(), "AAPL")

		// Assert
		if err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}
		if us.QuoteCalls != 1 {
			t.Errorf("Expected 1 Finnhub call, got %d", us.QuoteCalls)
		}
		if nordic.QuoteCalls != 0 {
			t.Errorf("Expected 0 Yahoo calls, got %d", nordic.QuoteCalls)
		}
		if quote.Currency != "USD" {
			t.Errorf("Expected USD quote, got %s", quote.Currency)
		}
	})

	t.Run("Stockholm ticker uses the Yahoo fetcher", func(t *testing.T) {
		us := testutil.NewMockUSFetcher()
		nordic := testutil.NewMockNordicFetcher()
		svc, _ := testutil.NewTestQuoteService(t, us, nordic)

		if _, err := svc.GetQuote(context.Background(), "VOLV-B.ST"); err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}

		if nordic.QuoteCalls != 1 {
			t.Errorf("Expected 1 Yahoo call, got %d", nordic.QuoteCalls)
		}
		if us.QuoteCalls != 0 {
			t.Errorf("Expected 0 Finnhub calls, got %d", us.QuoteCalls)
		}
	})

	t.Run("forex pair uses the Yahoo fetcher", func(t *testing.T) {
		us := testutil.NewMockUSFetcher()
		nordic := testutil.NewMockNordicFetcher()
		svc, _ := testutil.NewTestQuoteService(t, us, nordic)

		if _, err := svc.GetQuote(context.Background(), "SEK=X"); err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}

		if nordic.QuoteCalls != 1 {
			t.Errorf("Expected 1 Yahoo call, got %d", nordic.QuoteCalls)
		}
		if us.QuoteCalls != 0 {
			t.Errorf("Expected 0 Finnhub calls, got %d", us.QuoteCalls)
		}
	})

	t.Run("empty ticker is rejected", func(t *testing.T) {
		svc, _ := testutil.NewTestQuoteService(t, testutil.NewMockUSFetcher(), testutil.NewMockNordicFetcher())

		_, err := svc.GetQuote(context.Background(), "   ")

		if !errors.Is(err, apperrors.ErrTickerRequired) {
			t.Errorf("Expected ErrTickerRequired, got %v", err)
		}
	})

	t.Run("missing API key on the US path is a hard error", func(t *testing.T) {
		us := testutil.NewMockUSFetcher()
		us.Key = ""
		svc, _ := testutil.NewTestQuoteService(t, us, testutil.NewMockNordicFetcher())

		_, err := svc.GetQuote(context.Background(), "AAPL")

		if !errors.Is(err, apperrors.ErrAPIKeyMissing) {
			t.Errorf("Expected ErrAPIKeyMissing, got %v", err)
		}
		if us.QuoteCalls != 0 {
			t.Errorf("Expected 0 upstream calls without a key, got %d", us.QuoteCalls)
		}
	})
}

// TestQuoteService_Caching tests the cache interaction rules.
func TestQuoteService_Caching(t *testing.T) {
	t.Run("equivalent ticker spellings share one cache entry", func(t *testing.T) {
		// Setup
		us := testutil.NewMockUSFetcher()
		svc, _ := testutil.NewTestQuoteService(t, us, testutil.NewMockNordicFetcher())

		// Execute: two spellings of the same ticker
		first, err := svc.GetQuote(context.Background(), "aapl ")
		if err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}
		second, err := svc.GetQuote(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}

		// Assert: only one upstream fetch happened
		if us.QuoteCalls != 1 {
			t.Errorf("Expected 1 upstream call for both spellings, got %d", us.QuoteCalls)
		}
		if first.Price != second.Price {
			t.Errorf("Expected identical cached quote, got %v vs %v", first.Price, second.Price)
		}
	})

	t.Run("error results are not cached", func(t *testing.T) {
		us := testutil.NewMockUSFetcher()
		us.Quote = model.ZeroQuote("AAPL", "upstream unavailable")
		svc, _ := testutil.NewTestQuoteService(t, us, testutil.NewMockNordicFetcher())

		for i := 0; i < 2; i++ {
			if _, err := svc.GetQuote(context.Background(), "AAPL"); err != nil {
				t.Fatalf("GetQuote() returned unexpected error: %v", err)
			}
		}

		if us.QuoteCalls != 2 {
			t.Errorf("Expected 2 upstream calls for uncached errors, got %d", us.QuoteCalls)
		}
	})
}

// TestQuoteService_DemoFallback tests the narrow static fallback for the
// whitelisted demo symbol.
func TestQuoteService_DemoFallback(t *testing.T) {
	t.Run("whitelisted symbol falls back to demo values", func(t *testing.T) {
		nordic := testutil.NewMockNordicFetcher()
		nordic.Quote = model.Quote{Error: "fetch failed", IsError: true}
		svc, _ := testutil.NewTestQuoteService(t, testutil.NewMockUSFetcher(), nordic)

		quote, err := svc.GetQuote(context.Background(), service.DemoSymbol)

		if err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}
		if quote.Price != 312.50 {
			t.Errorf("Expected demo price 312.50, got %v", quote.Price)
		}
		if quote.Currency != "SEK" {
			t.Errorf("Expected demo currency SEK, got %s", quote.Currency)
		}
		if quote.Error != "" || quote.IsError {
			t.Errorf("Expected clean demo quote, got error %q", quote.Error)
		}
	})

	t.Run("other Nordic symbols keep their error", func(t *testing.T) {
		nordic := testutil.NewMockNordicFetcher()
		nordic.Quote = model.Quote{Error: "fetch failed", IsError: true}
		svc, _ := testutil.NewTestQuoteService(t, testutil.NewMockUSFetcher(), nordic)

		quote, err := svc.GetQuote(context.Background(), "VOLV-B.ST")

		if err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}
		if quote.Error == "" {
			t.Error("Expected error to survive for non-whitelisted symbols")
		}
	})

	t.Run("fallback is disabled by configuration", func(t *testing.T) {
		nordic := testutil.NewMockNordicFetcher()
		nordic.Quote = model.Quote{Error: "fetch failed", IsError: true}
		svc := service.NewQuoteService(testutil.NewMockUSFetcher(), nordic, service.NewQuoteCache(), false)

		quote, err := svc.GetQuote(context.Background(), service.DemoSymbol)

		if err != nil {
			t.Fatalf("GetQuote() returned unexpected error: %v", err)
		}
		if quote.Error == "" {
			t.Error("Expected error quote when fallback is disabled")
		}
	})
}
