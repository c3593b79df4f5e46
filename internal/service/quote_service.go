package service

import (
	"context"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/cache"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/ticker"
)

// USFetcher fetches quotes for the default/US regime (Finnhub).
type USFetcher interface {
	GetQuote(ctx context.Context, symbol string) model.Quote
	HasAPIKey() bool
}

// NordicFetcher fetches quotes for the Nordic and forex regimes (Yahoo).
type NordicFetcher interface {
	GetQuote(ctx context.Context, symbol string, days int) model.Quote
}

// DemoSymbol is the single whitelisted ticker that gets static demo
// values when the Nordic fetcher fails. Deliberately narrow; this is
// not general mock substitution.
const DemoSymbol = "INVE-B.ST"

// QuoteService routes quote requests to the right upstream fetcher and
// fronts them with the shared TTL cache. Error results are never
// cached, so a failed fetch retries upstream on the next request
// instead of serving a stale failure for the TTL window.
type QuoteService struct {
	us           USFetcher
	nordic       NordicFetcher
	quoteCache   *cache.Cache[model.Quote]
	nordicDays   int
	demoFallback bool
}

// NewQuoteService creates a QuoteService with the provided fetchers and cache.
func NewQuoteService(us USFetcher, nordic NordicFetcher, quoteCache *cache.Cache[model.Quote], demoFallback bool) *QuoteService {
	return &QuoteService{
		us:           us,
		nordic:       nordic,
		quoteCache:   quoteCache,
		nordicDays:   30,
		demoFallback: demoFallback,
	}
}

// GetQuote returns a normalized quote for a raw user-entered ticker.
// The ticker is normalized before routing so that equivalent spellings
// share one cache entry. The only returned error is a missing API key
// for the US regime; upstream failures come back inside the quote.
func (s *QuoteService) GetQuote(ctx context.Context, rawTicker string) (model.Quote, error) {
	symbol := ticker.Normalize(rawTicker)
	if symbol == "" {
		return model.Quote{}, apperrors.ErrTickerRequired
	}

	if quote, ok := s.quoteCache.Get(symbol); ok {
		return quote, nil
	}

	var quote model.Quote
	switch ticker.Route(symbol) {
	case ticker.MarketNordic, ticker.MarketForex:
		quote = s.nordic.GetQuote(ctx, symbol, s.nordicDays)
		if quote.IsError && s.demoFallback && symbol == DemoSymbol {
			return demoQuote(), nil
		}
	default:
		if !s.us.HasAPIKey() {
			return model.Quote{}, apperrors.ErrAPIKeyMissing
		}
		quote = s.us.GetQuote(ctx, symbol)
	}

	if quote.Error == "" {
		s.quoteCache.Set(symbol, quote)
	}
	return quote, nil
}

// demoQuote returns the last-known demo values for the whitelisted
// symbol. Whether this survives as production behavior is an open
// product question; it is kept behind the DemoFallback config switch.
func demoQuote() model.Quote {
	return model.Quote{
		Price:         312.50,
		Currency:      "SEK",
		ChangeAmount:  3.85,
		ChangePercent: 1.25,
		ShortName:     "Investor AB ser. B",
		Symbol:        DemoSymbol,
		History:       []float64{305, 308, 306, 310, 312, 311, 312.50},
	}
}

// NewQuoteCache constructs the shared quote cache with the standard TTL.
func NewQuoteCache() *cache.Cache[model.Quote] {
	return cache.New[model.Quote](cache.DefaultTTL)
}

// NewNewsCache constructs a news cache with the standard TTL.
func NewNewsCache() *cache.Cache[[]model.NewsItem] {
	return cache.New[[]model.NewsItem](cache.DefaultTTL)
}
