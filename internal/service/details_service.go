package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/finnhub"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/ticker"
)

// USDetailFetcher provides the detail-view building blocks for the
// default/US regime.
type USDetailFetcher interface {
	HasAPIKey() bool
	GetQuoteData(ctx context.Context, symbol string) (finnhub.QuoteData, error)
	GetProfile(ctx context.Context, symbol string) (finnhub.Profile, error)
	CandleCloses(ctx context.Context, symbol string, days int) ([]float64, error)
	GetInsiderTransactions(ctx context.Context, symbol string, limit int) ([]model.InsiderTransaction, error)
}

// InsiderScraper fetches disclosure filings for a Nordic company name.
// Implementations never error; all failures resolve to an empty list.
type InsiderScraper interface {
	ScrapeInsider(ctx context.Context, companyName string) []model.InsiderTransaction
}

// DetailsService assembles the detail-view payload: price block, 90-day
// close history, and insider transactions from either the Finnhub
// insider endpoint (US) or the FI disclosure register (.ST listings).
type DetailsService struct {
	us           USDetailFetcher
	nordic       NordicFetcher
	scraper      InsiderScraper
	demoFallback bool
}

// NewDetailsService creates a DetailsService with the provided dependencies.
func NewDetailsService(us USDetailFetcher, nordic NordicFetcher, scraper InsiderScraper, demoFallback bool) *DetailsService {
	return &DetailsService{
		us:           us,
		nordic:       nordic,
		scraper:      scraper,
		demoFallback: demoFallback,
	}
}

// GetDetails returns the detail payload for a raw ticker. The only
// returned error is a missing API key on the US path; upstream failures
// degrade the payload instead of failing the request.
func (s *DetailsService) GetDetails(ctx context.Context, rawTicker string) (model.Details, error) {
	symbol := ticker.Normalize(rawTicker)
	if symbol == "" {
		return model.Details{}, apperrors.ErrTickerRequired
	}

	if ticker.Route(symbol) == ticker.MarketNordic {
		return s.nordicDetails(ctx, symbol), nil
	}
	return s.usDetails(ctx, symbol)
}

// nordicDetails fetches the chart from Yahoo and, for Stockholm
// listings, follows up with the FI scraper. The scraper runs after the
// quote because it needs the resolved company display name, and its
// failure can never abort the already-successful quote response.
func (s *DetailsService) nordicDetails(ctx context.Context, symbol string) model.Details {
	quote := s.nordic.GetQuote(ctx, symbol, 90)

	if quote.IsError {
		if s.demoFallback && symbol == DemoSymbol {
			return demoDetails()
		}
		details := emptyDetails(symbol, "kr")
		details.Error = quote.Error
		details.IsError = true
		return details
	}

	currencySymbol := "kr"
	if quote.Currency == "USD" {
		currencySymbol = "$"
	}

	details := model.Details{
		Price: model.DetailPrice{
			ShortName:                  quote.ShortName,
			RegularMarketPrice:         quote.Price,
			RegularMarketChange:        quote.ChangeAmount,
			RegularMarketChangePercent: model.FormattedPct{Fmt: fmt.Sprintf("%.2f%%", quote.ChangePercent)},
			CurrencySymbol:             currencySymbol,
		},
		History:             quote.History,
		InsiderTransactions: []model.InsiderTransaction{},
	}

	// Only Stockholm listings are covered by the FI register.
	if strings.Contains(symbol, ".ST") {
		if transactions := s.scraper.ScrapeInsider(ctx, quote.ShortName); len(transactions) > 0 {
			details.InsiderTransactions = transactions
		}
	}

	return details
}

func (s *DetailsService) usDetails(ctx context.Context, symbol string) (model.Details, error) {
	if !s.us.HasAPIKey() {
		return model.Details{}, apperrors.ErrAPIKeyMissing
	}

	details := emptyDetails(symbol, "$")

	quote, err := s.us.GetQuoteData(ctx, symbol)
	if err != nil {
		details.Error = err.Error()
		return details, nil
	}

	profile, err := s.us.GetProfile(ctx, symbol)
	if err != nil {
		profile = finnhub.Profile{}
	}

	shortName := profile.Name
	if shortName == "" {
		shortName = symbol
	}

	details.Price = model.DetailPrice{
		ShortName:                  shortName,
		RegularMarketPrice:         quote.Current,
		RegularMarketChange:        quote.Change,
		RegularMarketChangePercent: model.FormattedPct{Fmt: fmt.Sprintf("%.2f%%", quote.ChangePercent)},
		CurrencySymbol:             model.CurrencySymbol(profile.Currency),
	}

	// History and insider data are supplementary; failures degrade.
	if closes, err := s.us.CandleCloses(ctx, symbol, finnhub.DetailCandleDays); err == nil {
		details.History = closes
	}
	if transactions, err := s.us.GetInsiderTransactions(ctx, symbol, 10); err == nil {
		details.InsiderTransactions = transactions
	}

	return details, nil
}

func emptyDetails(symbol, currencySymbol string) model.Details {
	return model.Details{
		Price: model.DetailPrice{
			ShortName:                  symbol,
			RegularMarketChangePercent: model.FormattedPct{Fmt: "0.00%"},
			CurrencySymbol:             currencySymbol,
		},
		History:             []float64{},
		InsiderTransactions: []model.InsiderTransaction{},
	}
}

// demoDetails returns the static demo detail payload for the
// whitelisted symbol.
func demoDetails() model.Details {
	return model.Details{
		Price: model.DetailPrice{
			ShortName:                  "Investor AB ser. B",
			RegularMarketPrice:         312.50,
			RegularMarketChange:        3.85,
			RegularMarketChangePercent: model.FormattedPct{Fmt: "+1.25%"},
			CurrencySymbol:             "kr",
		},
		History: []float64{305, 308, 306, 310, 312, 311, 312.50},
		InsiderTransactions: []model.InsiderTransaction{
			{
				HolderName:      "Wallenberg Jacob",
				TransactionText: "Purchase",
				Date:            "2024-12-15",
				Shares:          "50,000",
				Value:           "15,000,000 kr",
				IsBuy:           true,
			},
			{
				HolderName:      "Ekholm Borje",
				TransactionText: "Sale",
				Date:            "2024-11-20",
				Shares:          "10,000",
				Value:           "3,000,000 kr",
				IsBuy:           false,
			},
		},
	}
}
