package model

import "fmt"

// InsiderTransaction represents a single insider buy/sell disclosure,
// either scraped from the FI disclosure register or mapped from the
// Finnhub insider-transactions endpoint. Produced transiently per
// detail-view request; never persisted.
type InsiderTransaction struct {
	HolderName      string `json:"holderName"`
	Role            string `json:"role,omitempty"`
	TransactionText string `json:"transactionText"` // "Bought", "Sold", "Purchase", "Sale", ...
	Date            string `json:"date"`
	Shares          string `json:"shares"`
	Value           string `json:"value"` // formatted amount or "N/A"
	IsBuy           bool   `json:"isBuy"`
}

// FormatCount renders an integer with comma thousands separators, the
// format the dashboard uses for share counts and amounts.
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}
