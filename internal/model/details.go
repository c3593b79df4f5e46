package model

// DetailPrice mirrors the price block of the detail view. The nested
// percent format matches what the dashboard's detail card consumes.
type DetailPrice struct {
	ShortName                  string       `json:"shortName"`
	RegularMarketPrice         float64      `json:"regularMarketPrice"`
	RegularMarketChange        float64      `json:"regularMarketChange"`
	RegularMarketChangePercent FormattedPct `json:"regularMarketChangePercent"`
	CurrencySymbol             string       `json:"currencySymbol"`
}

// FormattedPct wraps a pre-formatted percent string, e.g. "1.25%".
type FormattedPct struct {
	Fmt string `json:"fmt"`
}

// Details is the full detail-view payload: price block, close history
// for the chart, and up to ten insider transactions. Insider data is
// best-effort; an empty list is a valid degraded result.
type Details struct {
	Price               DetailPrice          `json:"price"`
	History             []float64            `json:"history"`
	InsiderTransactions []InsiderTransaction `json:"insiderTransactions"`
	Error               string               `json:"error,omitempty"`
	IsError             bool                 `json:"isError,omitempty"`
}

// SearchResult is one row of a ticker search response.
type SearchResult struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	Exchange  string `json:"exchange"`
	TypeDisp  string `json:"typeDisp"`
}
