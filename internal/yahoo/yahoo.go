// Package yahoo provides methods for fetching financial data from the
// Yahoo Finance chart and search APIs. It serves the Nordic and
// foreign-exchange routing regimes, where no commercial API coverage
// exists. Requests carry browser-like headers because Yahoo rate-limits
// or blocks unbranded server traffic.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/model"
)

// HistoryDays is the chart window fetched for sparkline quotes.
const HistoryDays = 30

// DetailHistoryDays is the chart window fetched for the detail view.
const DetailHistoryDays = 90

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// Client provides methods for fetching quotes and running symbol
// searches against Yahoo Finance.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Yahoo Finance client with default HTTP settings.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://query2.finance.yahoo.com",
	}
}

// NewClientWithBaseURL creates a client pointed at an alternate host.
// Used by tests to target an httptest server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// GetQuote fetches a chart for the symbol and derives a normalized quote
// from its metadata. The chart API does not report change figures, so
// they are computed from chartPreviousClose:
//
//	previousClose = meta.chartPreviousClose, or the current price when
//	absent (producing a zero change rather than a divide-by-zero)
//
// On failure the returned quote is zero-valued with Error set and
// IsError true, so callers can decide whether to apply a fallback.
func (c *Client) GetQuote(ctx context.Context, symbol string, days int) model.Quote {
	resp, err := c.queryChart(ctx, symbol, days)
	if err != nil {
		q := model.ZeroQuote(symbol, err.Error())
		q.IsError = true
		return q
	}

	result := resp.Chart.Result[0]
	meta := result.Meta

	price := meta.RegularMarketPrice
	previousClose := meta.ChartPreviousClose
	if previousClose == 0 {
		previousClose = price
	}
	changeAmount, changePercent := model.ChangeFromPreviousClose(price, previousClose)

	shortName := meta.ShortName
	if shortName == "" {
		shortName = meta.LongName
	}
	if shortName == "" {
		shortName = symbol
	}

	return model.Quote{
		Price:         price,
		Currency:      meta.Currency,
		ChangeAmount:  changeAmount,
		ChangePercent: changePercent,
		ShortName:     shortName,
		Symbol:        meta.Symbol,
		History:       closeSeries(resp),
	}
}

// closeSeries extracts the chronological close series with null entries
// filtered out.
func closeSeries(resp Response) []float64 {
	history := []float64{}
	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return history
	}
	for _, closePrice := range result.Indicators.Quote[0].Close {
		if closePrice != nil {
			history = append(history, *closePrice)
		}
	}
	return history
}

// Search runs a symbol search and maps the candidates into search
// results, dropping entries without a symbol and capping at ten rows.
func (c *Client) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	searchURL := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=10&newsCount=0",
		c.baseURL, url.QueryEscape(query))

	body, err := c.getWithBrowserHeaders(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := []model.SearchResult{}
	for _, q := range resp.Quotes {
		if q.Symbol == "" {
			continue
		}
		if len(results) >= 10 {
			break
		}
		shortName := q.ShortName
		if shortName == "" {
			shortName = q.LongName
		}
		if shortName == "" {
			shortName = q.Symbol
		}
		exchange := q.Exchange
		if exchange == "" {
			exchange = "N/A"
		}
		typeDisp := q.TypeDisp
		if typeDisp == "" {
			typeDisp = q.QuoteType
		}
		if typeDisp == "" {
			typeDisp = "Stock"
		}
		results = append(results, model.SearchResult{
			Symbol:    q.Symbol,
			ShortName: shortName,
			Exchange:  exchange,
			TypeDisp:  typeDisp,
		})
	}
	return results, nil
}

// queryChart executes a ranged daily chart request for a symbol.
func (c *Client) queryChart(ctx context.Context, symbol string, days int) (Response, error) {
	period2 := time.Now().Unix()
	period1 := period2 - int64(days)*24*60*60

	chartURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL, url.PathEscape(symbol), period1, period2)

	body, err := c.getWithBrowserHeaders(ctx, chartURL)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		return Response{}, fmt.Errorf("failed to decode chart response: %w", err)
	}

	if response.Chart.Error != nil {
		return Response{}, fmt.Errorf("yahoo error: %s", response.Chart.Error.Description)
	}
	if len(response.Chart.Result) == 0 {
		return Response{}, apperrors.ErrNoChartData
	}

	return response, nil
}

// getWithBrowserHeaders issues a GET with the spoofed browser headers
// Yahoo expects from consumer traffic.
func (c *Client) getWithBrowserHeaders(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "sv-SE,sv;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, apperrors.ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: yahoo returned %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
