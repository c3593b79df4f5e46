package model

// HoldingType distinguishes equity holdings from fund holdings.
const (
	HoldingTypeStock = "stock"
	HoldingTypeFund  = "fund"
)

// PortfolioItem represents a single persisted holding. The holdings list
// is stored as one JSON blob under a fixed storage key, loaded once at
// startup and overwritten in full on every add/remove.
type PortfolioItem struct {
	ID       string  `json:"id"`
	Ticker   string  `json:"ticker"`
	Type     string  `json:"type"` // stock | fund
	Quantity float64 `json:"quantity"`
	AvgPrice float64 `json:"avgPrice"` // recorded but not used in valuation
}

// EnrichedStock is a holding joined with its current quote. Derived on
// every request from the cache state, never stored.
type EnrichedStock struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Ticker          string    `json:"ticker"`
	Type            string    `json:"type"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	ChangeAmount    float64   `json:"changeAmount"`
	ChangePercent   float64   `json:"changePercent"`
	IsPositive      bool      `json:"isPositive"`
	LogoPlaceholder string    `json:"logoPlaceholder"`
	Quantity        float64   `json:"quantity"`
	Value           float64   `json:"value"`         // home currency (SEK)
	OriginalValue   float64   `json:"originalValue"` // native currency
	History         []float64 `json:"history"`
}

// PortfolioTotals holds one aggregate reduction over a set of holdings.
type PortfolioTotals struct {
	TotalValue         float64 `json:"totalValue"`
	TotalChangeAmount  float64 `json:"totalChangeAmount"`
	TotalChangePercent float64 `json:"totalChangePercent"`
}

// PortfolioSummary is the aggregated view of the whole portfolio, with
// the same reduction applied to all holdings and per holding type.
type PortfolioSummary struct {
	Stocks    []EnrichedStock `json:"stocks"`
	Totals    PortfolioTotals `json:"totals"`
	ByType    TotalsByType    `json:"byType"`
	ForexRate float64         `json:"forexRate"`
}

// TotalsByType segments the aggregate totals by holding type.
type TotalsByType struct {
	Stock PortfolioTotals `json:"stock"`
	Fund  PortfolioTotals `json:"fund"`
}
