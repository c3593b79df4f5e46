package testutil

import (
	"context"

	"github.com/insiderpocket/backend/internal/finnhub"
	"github.com/insiderpocket/backend/internal/model"
)

// MockUSFetcher is a mock implementation of the Finnhub client surface
// used by the quote, details, and news services. It returns predefined
// test data instead of making actual API calls.
type MockUSFetcher struct {
	// Key simulates the configured API key; HasAPIKey reports Key != "".
	Key string

	// Quote is returned from GetQuote.
	Quote model.Quote

	// QuoteData and QuoteDataErr are returned from GetQuoteData.
	QuoteData    finnhub.QuoteData
	QuoteDataErr error

	// Profile and ProfileErr are returned from GetProfile.
	Profile    finnhub.Profile
	ProfileErr error

	// Closes and ClosesErr are returned from CandleCloses.
	Closes    []float64
	ClosesErr error

	// Insider and InsiderErr are returned from GetInsiderTransactions.
	Insider    []model.InsiderTransaction
	InsiderErr error

	// MarketNews, CompanyNews and NewsErr drive the news surface.
	// CompanyNews is keyed by symbol.
	MarketNews  []model.NewsItem
	CompanyNews map[string][]model.NewsItem
	NewsErr     error

	// QuoteCalls tracks how many times GetQuote was called.
	QuoteCalls int

	// NewsCalls tracks how many news fetches were made (market + company).
	NewsCalls int
}

// NewMockUSFetcher creates a mock with an API key configured and a
// healthy default quote.
func NewMockUSFetcher() *MockUSFetcher {
	return &MockUSFetcher{
		Key: "test-api-key",
		Quote: model.Quote{
			Price:         150,
			Currency:      "USD",
			ChangeAmount:  2,
			ChangePercent: 1.35,
			ShortName:     "Apple Inc",
			Symbol:        "AAPL",
			History:       []float64{148, 149, 150},
		},
	}
}

func (m *MockUSFetcher) HasAPIKey() bool {
	return m.Key != ""
}

func (m *MockUSFetcher) SetAPIKey(key string) {
	m.Key = key
}

func (m *MockUSFetcher) GetQuote(_ context.Context, symbol string) model.Quote {
	m.QuoteCalls++
	quote := m.Quote
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	return quote
}

func (m *MockUSFetcher) GetQuoteData(_ context.Context, _ string) (finnhub.QuoteData, error) {
	return m.QuoteData, m.QuoteDataErr
}

func (m *MockUSFetcher) GetProfile(_ context.Context, _ string) (finnhub.Profile, error) {
	return m.Profile, m.ProfileErr
}

func (m *MockUSFetcher) CandleCloses(_ context.Context, _ string, _ int) ([]float64, error) {
	return m.Closes, m.ClosesErr
}

func (m *MockUSFetcher) GetInsiderTransactions(_ context.Context, _ string, _ int) ([]model.InsiderTransaction, error) {
	return m.Insider, m.InsiderErr
}

func (m *MockUSFetcher) GetMarketNews(_ context.Context, _ string) ([]model.NewsItem, error) {
	m.NewsCalls++
	if m.NewsErr != nil {
		return nil, m.NewsErr
	}
	return m.MarketNews, nil
}

func (m *MockUSFetcher) GetCompanyNews(_ context.Context, symbol string) ([]model.NewsItem, error) {
	m.NewsCalls++
	if m.NewsErr != nil {
		return nil, m.NewsErr
	}
	return m.CompanyNews[symbol], nil
}

// MockNordicFetcher is a mock implementation of the Yahoo chart client
// surface used by the quote and details services.
type MockNordicFetcher struct {
	// Quote is returned from GetQuote. Quotes keyed by symbol in Quotes
	// take precedence when present.
	Quote  model.Quote
	Quotes map[string]model.Quote

	// QuoteCalls tracks how many times GetQuote was called.
	QuoteCalls int
}

// NewMockNordicFetcher creates a mock with a healthy default quote.
func NewMockNordicFetcher() *MockNordicFetcher {
	return &MockNordicFetcher{
		Quote: model.Quote{
			Price:         300,
			Currency:      "SEK",
			ChangeAmount:  3,
			ChangePercent: 1.01,
			ShortName:     "Investor AB ser. B",
			Symbol:        "INVE-B.ST",
			History:       []float64{295, 298, 300},
		},
	}
}

func (m *MockNordicFetcher) GetQuote(_ context.Context, symbol string, _ int) model.Quote {
	m.QuoteCalls++
	if quote, ok := m.Quotes[symbol]; ok {
		return quote
	}
	quote := m.Quote
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	return quote
}

// MockScraper is a mock implementation of the FI disclosure scraper.
type MockScraper struct {
	// Transactions is returned from ScrapeInsider.
	Transactions []model.InsiderTransaction

	// LastCompanyName records the company name of the most recent call.
	LastCompanyName string

	// ScrapeCalls tracks how many times ScrapeInsider was called.
	ScrapeCalls int
}

func (m *MockScraper) ScrapeInsider(_ context.Context, companyName string) []model.InsiderTransaction {
	m.ScrapeCalls++
	m.LastCompanyName = companyName
	return m.Transactions
}

// MockSearcher is a mock implementation of the Yahoo symbol search.
type MockSearcher struct {
	Results []model.SearchResult
	Err     error

	// SearchCalls tracks how many times Search was called.
	SearchCalls int
}

func (m *MockSearcher) Search(_ context.Context, _ string) ([]model.SearchResult, error) {
	m.SearchCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}
