package model

// Quote represents a normalized quote for a single instrument, regardless
// of which upstream source produced it.
//
// The change fields satisfy:
//
//	ChangeAmount  = Price - previousClose
//	ChangePercent = ChangeAmount / previousClose * 100
//
// whenever previousClose > 0; both default to 0 otherwise. A Quote with a
// non-empty Error is still a structurally valid zero-value quote so that
// downstream aggregation never has to special-case absence.
type Quote struct {
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	ChangeAmount  float64   `json:"changeAmount"`
	ChangePercent float64   `json:"changePercent"`
	ShortName     string    `json:"shortName"`
	Symbol        string    `json:"symbol"`
	History       []float64 `json:"history"`
	Error         string    `json:"error,omitempty"`

	// IsError is set by the Nordic fetcher so callers can trigger the
	// narrow demo fallback; the US fetcher only sets Error.
	IsError bool `json:"isError,omitempty"`
}

// ZeroQuote returns a structurally valid quote carrying an error message.
func ZeroQuote(symbol, errMsg string) Quote {
	return Quote{
		Symbol:  symbol,
		History: []float64{},
		Error:   errMsg,
	}
}

// ChangeFromPreviousClose computes the change amount and percent for a
// price against a previous close, guarding against division by zero.
func ChangeFromPreviousClose(price, previousClose float64) (amount, percent float64) {
	if previousClose <= 0 {
		return 0, 0
	}
	amount = price - previousClose
	percent = amount / previousClose * 100
	return amount, percent
}

// CurrencySymbol maps an ISO currency code to its display symbol.
// Unknown codes pass through unchanged.
func CurrencySymbol(currency string) string {
	switch currency {
	case "USD":
		return "$"
	case "SEK":
		return "kr"
	case "":
		return "$"
	default:
		return currency
	}
}
