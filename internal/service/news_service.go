package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/cache"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/ticker"
)

// MaxNewsItems caps how many items either news mode returns.
const MaxNewsItems = 20

// MaxNewsTickers caps how many tickers a portfolio news request fans
// out to; extra tickers are ignored.
const MaxNewsTickers = 5

const generalNewsCacheKey = "general"

// NewsFetcher is the upstream news surface of the Finnhub client.
type NewsFetcher interface {
	HasAPIKey() bool
	GetMarketNews(ctx context.Context, category string) ([]model.NewsItem, error)
	GetCompanyNews(ctx context.Context, symbol string) ([]model.NewsItem, error)
}

// NewsService aggregates market and portfolio news. General news is
// cached under a single key; portfolio news under the sorted
// comma-joined ticker set so cache hits are order-independent.
type NewsService struct {
	fetcher        NewsFetcher
	generalCache   *cache.Cache[[]model.NewsItem]
	portfolioCache *cache.Cache[[]model.NewsItem]
}

// NewNewsService creates a NewsService with the provided fetcher and caches.
func NewNewsService(fetcher NewsFetcher, generalCache, portfolioCache *cache.Cache[[]model.NewsItem]) *NewsService {
	return &NewsService{
		fetcher:        fetcher,
		generalCache:   generalCache,
		portfolioCache: portfolioCache,
	}
}

// GetGeneralNews returns category-based market news. Only the default
// "general" category is cached. Upstream failure degrades to an empty
// list; a missing API key is the one protocol-level error.
func (s *NewsService) GetGeneralNews(ctx context.Context, category string) ([]model.NewsItem, error) {
	if category == "" {
		category = "general"
	}

	if category == generalNewsCacheKey {
		if items, ok := s.generalCache.Get(generalNewsCacheKey); ok {
			return items, nil
		}
	}

	if !s.fetcher.HasAPIKey() {
		return nil, apperrors.ErrAPIKeyMissing
	}

	items, err := s.fetcher.GetMarketNews(ctx, category)
	if err != nil {
		log.Printf("news: failed to fetch %s news: %v", category, err)
		return []model.NewsItem{}, nil
	}

	if len(items) > MaxNewsItems {
		items = items[:MaxNewsItems]
	}

	// General-mode items have no portfolio context; only items already
	// carrying a ticker tag can be flagged critical.
	MarkCritical(items, nil)

	if category == generalNewsCacheKey {
		s.generalCache.Set(generalNewsCacheKey, items)
	}
	return items, nil
}

// GetPortfolioNews returns company news for up to five portfolio
// tickers: flattened, deduplicated by id, sorted by descending
// timestamp, Sentinel-classified, and truncated. Nordic tickers are
// skipped (no coverage from the upstream); per-ticker failures resolve
// to an empty list for that ticker only.
func (s *NewsService) GetPortfolioNews(ctx context.Context, rawTickers []string) ([]model.NewsItem, error) {
	tickers := normalizeTickerSet(rawTickers)
	if len(tickers) == 0 {
		return []model.NewsItem{}, nil
	}

	cacheKey := strings.Join(tickers, ",")
	if items, ok := s.portfolioCache.Get(cacheKey); ok {
		return items, nil
	}

	if !s.fetcher.HasAPIKey() {
		return nil, apperrors.ErrAPIKeyMissing
	}

	var all []model.NewsItem
	for _, symbol := range tickers {
		if ticker.Route(symbol) == ticker.MarketNordic {
			continue
		}
		items, err := s.fetcher.GetCompanyNews(ctx, symbol)
		if err != nil {
			log.Printf("news: failed to fetch company news for %s: %v", symbol, err)
			continue
		}
		all = append(all, items...)
	}

	result := dedupeByID(all)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Datetime > result[j].Datetime
	})

	MarkCritical(result, tickers)

	if len(result) > MaxNewsItems {
		result = result[:MaxNewsItems]
	}

	s.portfolioCache.Set(cacheKey, result)
	return result, nil
}

// normalizeTickerSet normalizes, deduplicates, sorts, and caps the
// requested tickers. Sorting makes the cache key order-independent.
func normalizeTickerSet(raw []string) []string {
	seen := map[string]bool{}
	tickers := []string{}
	for _, r := range raw {
		t := ticker.Normalize(r)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	if len(tickers) > MaxNewsTickers {
		tickers = tickers[:MaxNewsTickers]
	}
	return tickers
}

// dedupeByID keeps one item per id, last-seen-wins, preserving no
// particular order (the caller sorts).
func dedupeByID(items []model.NewsItem) []model.NewsItem {
	byID := make(map[int64]model.NewsItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	result := make([]model.NewsItem, 0, len(byID))
	for _, item := range byID {
		result = append(result, item)
	}
	return result
}
