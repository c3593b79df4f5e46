package model

// NewsItem represents a normalized news article from the market-data API.
// Datetime is epoch milliseconds (the upstream reports seconds).
// Uniqueness key is ID; portfolio-mode results are ordered by strictly
// descending Datetime.
type NewsItem struct {
	ID         int64  `json:"id"`
	Headline   string `json:"headline"`
	Summary    string `json:"summary"`
	URL        string `json:"url"`
	Source     string `json:"source"`
	Image      string `json:"image"`
	Datetime   int64  `json:"datetime"`
	Category   string `json:"category"`
	IsCritical bool   `json:"isCritical"`
	Ticker     string `json:"ticker,omitempty"`
}
