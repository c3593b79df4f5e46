package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/insiderpocket/backend/internal/apperrors"
	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/repository"
	"github.com/insiderpocket/backend/internal/ticker"
)

// DefaultForexRate is used when the USD/SEK quote is unavailable.
const DefaultForexRate = 10.5

// PortfolioService manages the persisted holdings list and computes the
// aggregated portfolio view. Holdings are held in memory after a single
// load at startup; every mutation overwrites the stored blob in full.
type PortfolioService struct {
	storageRepo  *repository.StorageRepository
	quoteService *QuoteService

	mu    sync.Mutex
	items []model.PortfolioItem
}

// NewPortfolioService creates a PortfolioService and loads the persisted
// holdings blob. A missing blob starts an empty portfolio; a corrupt
// one is an error so bad data is not silently overwritten.
func NewPortfolioService(storageRepo *repository.StorageRepository, quoteService *QuoteService) (*PortfolioService, error) {
	s := &PortfolioService{
		storageRepo:  storageRepo,
		quoteService: quoteService,
		items:        []model.PortfolioItem{},
	}

	blob, ok, err := storageRepo.Get(repository.PortfolioStorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToLoadPortfolio, err)
	}
	if ok {
		if err := json.Unmarshal([]byte(blob), &s.items); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrFailedToLoadPortfolio, err)
		}
	}
	return s, nil
}

// GetHoldings returns a copy of the current holdings list.
func (s *PortfolioService) GetHoldings() []model.PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.PortfolioItem, len(s.items))
	copy(items, s.items)
	return items
}

// AddHolding appends a new holding and persists the full list.
func (s *PortfolioService) AddHolding(rawTicker, holdingType string, quantity, avgPrice float64) (model.PortfolioItem, error) {
	symbol := ticker.Normalize(rawTicker)
	if symbol == "" {
		return model.PortfolioItem{}, apperrors.ErrTickerRequired
	}
	if quantity <= 0 {
		return model.PortfolioItem{}, apperrors.ErrInvalidQuantity
	}
	if holdingType != model.HoldingTypeStock && holdingType != model.HoldingTypeFund {
		return model.PortfolioItem{}, apperrors.ErrInvalidHoldingType
	}

	item := model.PortfolioItem{
		ID:       uuid.New().String(),
		Ticker:   symbol,
		Type:     holdingType,
		Quantity: quantity,
		AvgPrice: avgPrice,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	if err := s.save(); err != nil {
		s.items = s.items[:len(s.items)-1]
		return model.PortfolioItem{}, err
	}
	return item, nil
}

// RemoveHolding deletes a holding by id and persists the full list.
func (s *PortfolioService) RemoveHolding(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidUUID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			removed := item
			s.items = append(s.items[:i], s.items[i+1:]...)
			if err := s.save(); err != nil {
				s.items = append(s.items[:i], append([]model.PortfolioItem{removed}, s.items[i:]...)...)
				return err
			}
			return nil
		}
	}
	return apperrors.ErrHoldingNotFound
}

// save writes the holdings blob. Caller holds the mutex.
func (s *PortfolioService) save() error {
	blob, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToSavePortfolio, err)
	}
	if err := s.storageRepo.Put(repository.PortfolioStorageKey, string(blob)); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToSavePortfolio, err)
	}
	return nil
}

// GetSummary fetches quotes for every holding plus the USD/SEK rate as
// one concurrent batch, then aggregates. Batching bounds the total
// latency to the slowest single upstream call.
func (s *PortfolioService) GetSummary(ctx context.Context) (model.PortfolioSummary, error) {
	items := s.GetHoldings()

	quotes := make([]model.Quote, len(items))
	var forex model.Quote

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.quoteService.GetQuote(gctx, ticker.ForexSEK)
		if err == nil {
			forex = q
		}
		return nil
	})
	for i, item := range items {
		g.Go(func() error {
			q, err := s.quoteService.GetQuote(gctx, item.Ticker)
			if err != nil {
				// Degraded: the holding renders as a placeholder.
				q = model.ZeroQuote(item.Ticker, err.Error())
			}
			quotes[i] = q
			return nil
		})
	}
	// Workers never return errors; the group is used purely as a join.
	_ = g.Wait()

	forexRate := DefaultForexRate
	if forex.Price > 0 {
		forexRate = forex.Price
	}

	return Aggregate(items, quotes, forexRate), nil
}

// Aggregate combines holdings with their quotes and a USD/SEK rate into
// the portfolio summary. Holdings without a usable quote become
// zero-valued placeholders so the UI can render a loading skeleton
// without special-casing absence.
func Aggregate(items []model.PortfolioItem, quotes []model.Quote, forexRate float64) model.PortfolioSummary {
	stocks := make([]model.EnrichedStock, len(items))
	for i, item := range items {
		stocks[i] = enrich(item, quotes[i], forexRate)
	}

	summary := model.PortfolioSummary{
		Stocks:    stocks,
		Totals:    reduce(stocks, "", forexRate),
		ForexRate: forexRate,
	}
	summary.ByType = model.TotalsByType{
		Stock: reduce(stocks, model.HoldingTypeStock, forexRate),
		Fund:  reduce(stocks, model.HoldingTypeFund, forexRate),
	}
	return summary
}

func enrich(item model.PortfolioItem, quote model.Quote, forexRate float64) model.EnrichedStock {
	if quote.Error != "" || quote.ShortName == "" {
		return model.EnrichedStock{
			ID:              item.ID,
			Name:            item.Ticker,
			Ticker:          item.Ticker,
			Type:            item.Type,
			Currency:        "...",
			IsPositive:      true,
			LogoPlaceholder: logoPlaceholder(item.Ticker),
			Quantity:        item.Quantity,
			History:         []float64{},
		}
	}

	nativeValue := quote.Price * item.Quantity
	homeValue := nativeValue * rateFor(quote.Currency, forexRate)

	return model.EnrichedStock{
		ID:              item.ID,
		Name:            quote.ShortName,
		Ticker:          quote.Symbol,
		Type:            item.Type,
		Price:           quote.Price,
		Currency:        quote.Currency,
		ChangeAmount:    quote.ChangeAmount,
		ChangePercent:   quote.ChangePercent,
		IsPositive:      quote.ChangeAmount >= 0,
		LogoPlaceholder: logoPlaceholder(quote.ShortName),
		Quantity:        item.Quantity,
		Value:           homeValue,
		OriginalValue:   nativeValue,
		History:         quote.History,
	}
}

// rateFor returns the home-currency conversion rate for an ISO code.
// Only USD is a foreign unit today; unknown codes default to a no-op
// conversion so a third currency cannot silently mis-value.
func rateFor(currency string, forexRate float64) float64 {
	if currency == "USD" {
		return forexRate
	}
	return 1
}

// reduce applies the aggregate reduction over holdings, optionally
// filtered by type. Day change is Σ(changeAmount × quantity × rate) and
// the percent is taken against the previous value, guarded to 0 when
// that denominator is not positive.
func reduce(stocks []model.EnrichedStock, holdingType string, forexRate float64) model.PortfolioTotals {
	var totals model.PortfolioTotals
	for _, stock := range stocks {
		if holdingType != "" && stock.Type != holdingType {
			continue
		}
		rate := rateFor(stock.Currency, forexRate)
		totals.TotalValue += stock.Value
		totals.TotalChangeAmount += stock.ChangeAmount * stock.Quantity * rate
	}

	previousValue := totals.TotalValue - totals.TotalChangeAmount
	if previousValue > 0 {
		totals.TotalChangePercent = totals.TotalChangeAmount / previousValue * 100
	}
	return totals
}

func logoPlaceholder(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}
