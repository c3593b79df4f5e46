package yahoo

// Response represents the raw JSON response structure from the Yahoo
// Finance chart API. Close prices are pointers because the API emits
// nulls for days without a trade; those entries are filtered out when
// building a history series.
type Response struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// SearchResponse represents the raw JSON response from the Yahoo Finance
// search endpoint.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

// SearchQuote is one candidate instrument in a search response.
type SearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	Exchange  string `json:"exchange"`
	TypeDisp  string `json:"typeDisp"`
	QuoteType string `json:"quoteType"`
}
