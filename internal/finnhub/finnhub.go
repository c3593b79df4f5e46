// Package finnhub is a thin client for the Finnhub market-data REST API.
// It serves the default/US routing regime: last price, company profile,
// daily candles, insider transactions, and news.
package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/model"
)

// CandleDays is the history window fetched for sparkline quotes.
const CandleDays = 30

// DetailCandleDays is the history window fetched for the detail view.
const DetailCandleDays = 90

// Client provides methods for fetching financial data from the Finnhub API.
// All methods require an API key; calls without one fail fast with
// apperrors.ErrAPIKeyMissing so handlers can degrade explicitly.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu     sync.RWMutex
	apiKey string
}

// NewClient creates a Finnhub client for the given base URL and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// HasAPIKey reports whether the client was configured with an API key.
func (c *Client) HasAPIKey() bool {
	return c.token() != ""
}

// SetAPIKey replaces the API key at runtime, used when the key is saved
// through the settings endpoint instead of the environment.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

func (c *Client) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// GetQuote fetches a normalized quote for a US/global ticker: last price
// from /quote, name and currency from /stock/profile2, and a 30-day
// close series from /stock/candle.
//
// Failure policy: if the primary quote call fails, the whole operation
// returns a zero-valued Quote carrying the error message. Profile and
// candle failures degrade the result (ticker used as name, empty
// history) without marking it as an error.
func (c *Client) GetQuote(ctx context.Context, symbol string) model.Quote {
	var q QuoteData
	if err := c.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &q); err != nil {
		return model.ZeroQuote(symbol, err.Error())
	}

	quote := model.Quote{
		Price:         q.Current,
		Currency:      "USD",
		ChangeAmount:  q.Change,
		ChangePercent: q.ChangePercent,
		ShortName:     symbol,
		Symbol:        symbol,
		History:       []float64{},
	}

	var p Profile
	if err := c.get(ctx, "/stock/profile2", url.Values{"symbol": {symbol}}, &p); err == nil {
		if p.Name != "" {
			quote.ShortName = p.Name
		}
		if p.Currency != "" {
			quote.Currency = p.Currency
		}
	}

	// Candle failure is an acceptable degraded result, not an error.
	if closes, err := c.CandleCloses(ctx, symbol, CandleDays); err == nil {
		quote.History = closes
	}

	return quote
}

// CandleCloses fetches a daily close series covering the last `days` days.
func (c *Client) CandleCloses(ctx context.Context, symbol string, days int) ([]float64, error) {
	now := time.Now().Unix()
	from := now - int64(days)*24*60*60

	var candles Candles
	err := c.get(ctx, "/stock/candle", url.Values{
		"symbol":     {symbol},
		"resolution": {"D"},
		"from":       {fmt.Sprintf("%d", from)},
		"to":         {fmt.Sprintf("%d", now)},
	}, &candles)
	if err != nil {
		return nil, err
	}
	if candles.Status != "ok" || candles.Close == nil {
		return []float64{}, nil
	}
	return candles.Close, nil
}

// GetProfile fetches the company profile for a symbol.
func (c *Client) GetProfile(ctx context.Context, symbol string) (Profile, error) {
	var p Profile
	err := c.get(ctx, "/stock/profile2", url.Values{"symbol": {symbol}}, &p)
	return p, err
}

// GetQuoteData fetches the raw /quote payload for a symbol.
func (c *Client) GetQuoteData(ctx context.Context, symbol string) (QuoteData, error) {
	var q QuoteData
	err := c.get(ctx, "/quote", url.Values{"symbol": {symbol}}, &q)
	return q, err
}

// GetInsiderTransactions fetches insider transactions for a symbol and
// maps them into the dashboard's transaction shape, capped at limit rows.
func (c *Client) GetInsiderTransactions(ctx context.Context, symbol string, limit int) ([]model.InsiderTransaction, error) {
	var data InsiderData
	if err := c.get(ctx, "/stock/insider-transactions", url.Values{"symbol": {symbol}}, &data); err != nil {
		return nil, err
	}

	transactions := []model.InsiderTransaction{}
	for _, rec := range data.Data {
		if len(transactions) >= limit {
			break
		}
		transactions = append(transactions, mapInsiderRecord(rec))
	}
	return transactions, nil
}

func mapInsiderRecord(rec InsiderRecord) model.InsiderTransaction {
	text := rec.TransactionCode
	switch rec.TransactionCode {
	case "P":
		text = "Purchase"
	case "S":
		text = "Sale"
	case "":
		text = "Transaction"
	}

	name := rec.Name
	if name == "" {
		name = "Unknown"
	}

	date := rec.TransactionDate
	if date == "" {
		date = "N/A"
	}

	value := "N/A"
	if rec.Change != 0 {
		change := rec.Change
		if change < 0 {
			change = -change
		}
		value = fmt.Sprintf("$%s", model.FormatCount(int64(change)))
	}

	return model.InsiderTransaction{
		HolderName:      name,
		TransactionText: text,
		Date:            date,
		Shares:          model.FormatCount(rec.Share),
		Value:           value,
		IsBuy:           rec.TransactionCode == "P" || rec.Change > 0,
	}
}

// GetMarketNews fetches general market news for a category. A non-array
// payload from upstream decodes to an empty slice rather than an error.
func (c *Client) GetMarketNews(ctx context.Context, category string) ([]model.NewsItem, error) {
	articles, err := c.getNews(ctx, "/news", url.Values{"category": {category}})
	if err != nil {
		return nil, err
	}
	return normalizeArticles(articles, ""), nil
}

// GetCompanyNews fetches per-ticker company news for the trailing week.
// Returned items are tagged with the requested symbol.
func (c *Client) GetCompanyNews(ctx context.Context, symbol string) ([]model.NewsItem, error) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	articles, err := c.getNews(ctx, "/company-news", url.Values{
		"symbol": {symbol},
		"from":   {weekAgo.Format("2006-01-02")},
		"to":     {now.Format("2006-01-02")},
	})
	if err != nil {
		return nil, err
	}
	return normalizeArticles(articles, symbol), nil
}

// getNews decodes a news endpoint response, tolerating the upstream's
// habit of returning an error object or empty string instead of an array.
func (c *Client) getNews(ctx context.Context, path string, params url.Values) ([]NewsArticle, error) {
	body, err := c.getRaw(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var articles []NewsArticle
	if err := json.Unmarshal(body, &articles); err != nil {
		// ParseFailure: treated as empty-result, not surfaced upstream.
		return []NewsArticle{}, nil
	}
	return articles, nil
}

// normalizeArticles converts upstream seconds to epoch milliseconds and
// defaults the category from the related field or "general".
func normalizeArticles(articles []NewsArticle, ticker string) []model.NewsItem {
	items := make([]model.NewsItem, 0, len(articles))
	for _, a := range articles {
		category := a.Category
		if category == "" {
			category = a.Related
		}
		if category == "" {
			category = "general"
		}
		items = append(items, model.NewsItem{
			ID:       a.ID,
			Headline: a.Headline,
			Summary:  a.Summary,
			URL:      a.URL,
			Source:   a.Source,
			Image:    a.Image,
			Datetime: a.Datetime * 1000,
			Category: category,
			Ticker:   ticker,
		})
	}
	return items
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	body, err := c.getRaw(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	token := c.token()
	if token == "" {
		return nil, apperrors.ErrAPIKeyMissing
	}

	params.Set("token", token)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, apperrors.ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: finnhub returned %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
