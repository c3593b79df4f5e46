package service

import (
	"strings"

	"github.com/insiderpocket/backend/internal/model"
	"github.com/insiderpocket/backend/internal/ticker"
)

// criticalKeywords is the bilingual term list the Sentinel heuristic
// matches against headline and summary text.
var criticalKeywords = []string{
	// English
	"resigns",
	"resignation",
	"investigation",
	"lawsuit",
	"fraud",
	"bankruptcy",
	"profit warning",
	"recall",
	"scandal",
	// Swedish
	"avgår",
	"utredning",
	"stämning",
	"bedrägeri",
	"konkurs",
	"vinstvarning",
	"skandal",
}

// MarkCritical applies the Sentinel classification to a news list in
// place. An item is critical when its case-folded headline+summary
// contains at least one critical keyword AND it is portfolio-relevant:
// either the text mentions one of the cleaned portfolio tickers (Nordic
// suffixes stripped) or the item already carries a ticker tag. With no
// portfolio context, only tagged items can qualify.
func MarkCritical(items []model.NewsItem, portfolioTickers []string) {
	cleaned := make([]string, 0, len(portfolioTickers))
	for _, t := range portfolioTickers {
		if c := ticker.StripNordicSuffix(ticker.Normalize(t)); c != "" {
			cleaned = append(cleaned, strings.ToLower(c))
		}
	}

	for i := range items {
		text := strings.ToLower(items[i].Headline + " " + items[i].Summary)

		if !containsAnyKeyword(text) {
			continue
		}

		relevant := items[i].Ticker != ""
		if !relevant {
			for _, t := range cleaned {
				if strings.Contains(text, t) {
					relevant = true
					break
				}
			}
		}
		items[i].IsCritical = relevant
	}
}

func containsAnyKeyword(text string) bool {
	for _, kw := range criticalKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
