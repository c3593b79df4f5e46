package finnhub

// QuoteData maps the Finnhub /quote response. Field names follow the
// upstream's single-letter convention: c = current price, d = change,
// dp = change percent, pc = previous close.
type QuoteData struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	PreviousClose float64 `json:"pc"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
}

// Profile maps the Finnhub /stock/profile2 response.
type Profile struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Ticker   string `json:"ticker"`
	Exchange string `json:"exchange"`
	Logo     string `json:"logo"`
}

// Candles maps the Finnhub /stock/candle response. Status is "ok" when
// data is present and "no_data" otherwise.
type Candles struct {
	Status     string    `json:"s"`
	Close      []float64 `json:"c"`
	Timestamps []int64   `json:"t"`
}

// InsiderData maps the Finnhub /stock/insider-transactions response.
type InsiderData struct {
	Data []InsiderRecord `json:"data"`
}

// InsiderRecord is one row of the insider-transactions response.
// TransactionCode follows SEC form 4 codes: P = purchase, S = sale.
type InsiderRecord struct {
	Name            string  `json:"name"`
	Share           int64   `json:"share"`
	Change          float64 `json:"change"`
	TransactionDate string  `json:"transactionDate"`
	TransactionCode string  `json:"transactionCode"`
}

// NewsArticle maps one element of the Finnhub /news and /company-news
// responses. Datetime is epoch seconds.
type NewsArticle struct {
	ID       int64  `json:"id"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Image    string `json:"image"`
	Datetime int64  `json:"datetime"`
	Category string `json:"category"`
	Related  string `json:"related"`
}
