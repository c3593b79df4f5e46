// Package ticker canonicalizes user-entered ticker strings and classifies
// them into a market regime. Normalization must run before any cache
// lookup, upstream call, or display so that "tsla ", "TSLA" and "TSLA "
// all resolve to the same instrument.
package ticker

import (
	"regexp"
	"strings"
)

// Market identifies which upstream source serves a ticker.
type Market int

const (
	// MarketUS is the default regime, served by the Finnhub API.
	MarketUS Market = iota
	// MarketNordic covers Stockholm (.ST) and Helsinki (.HE) listings,
	// served by the Yahoo chart API and the FI disclosure register.
	MarketNordic
	// MarketForex covers foreign-exchange pseudo-tickers such as "SEK=X".
	MarketForex
)

// ForexSEK is the Yahoo pseudo-ticker for the USD/SEK rate; the quote
// price is the number of SEK per USD.
const ForexSEK = "SEK=X"

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// Normalize canonicalizes a raw ticker string: uppercase, trim, replace
// literal "%20" with "-", collapse whitespace runs to "-", collapse
// consecutive hyphens. Idempotent.
func Normalize(raw string) string {
	t := strings.ToUpper(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "%20", "-")
	t = whitespaceRun.ReplaceAllString(t, "-")
	t = hyphenRun.ReplaceAllString(t, "-")
	return t
}

// Route classifies a normalized ticker into its market regime. Rules are
// checked in priority order; the first match wins.
func Route(t string) Market {
	if t == ForexSEK || strings.Contains(t, "=X") {
		return MarketForex
	}
	if strings.Contains(t, ".ST") || strings.Contains(t, ".HE") {
		return MarketNordic
	}
	return MarketUS
}

// StripNordicSuffix removes the Nordic exchange suffix from a ticker,
// for matching tickers against news text ("INVE-B.ST" -> "INVE-B").
func StripNordicSuffix(t string) string {
	t = strings.TrimSuffix(t, ".ST")
	t = strings.TrimSuffix(t, ".HE")
	return t
}

func (m Market) String() string {
	switch m {
	case MarketNordic:
		return "nordic"
	case MarketForex:
		return "forex"
	default:
		return "us"
	}
}
