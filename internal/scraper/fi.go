// Package scraper extracts insider buy/sell disclosures from the
// Swedish regulator's (Finansinspektionen) public search page. The page
// is an external HTML document whose table layout is assumed stable;
// everything here is best-effort and fails soft, since disclosure data
// is supplementary to the detail view, never primary.
package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/insiderpocket/backend/internal/model"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// MaxTransactions caps how many disclosure rows a single scrape returns.
const MaxTransactions = 10

// Scraper queries the FI insider search page for a company.
type Scraper struct {
	httpClient *http.Client
	baseURL    string
}

// NewScraper creates a scraper against the production FI search page.
func NewScraper() *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    "https://marknadssok.fi.se/publiceringsklient/sv-SE/Search/Search",
	}
}

// NewScraperWithBaseURL creates a scraper against an alternate endpoint.
// Used by tests to target an httptest server.
func NewScraperWithBaseURL(baseURL string) *Scraper {
	s := NewScraper()
	s.baseURL = baseURL
	return s
}

var (
	legalSuffixes = regexp.MustCompile(`(?i)( AB| publ| ser\. [AB]| series [AB])`)
)

// SearchTerm derives the FI search term from a company display name:
// legal-entity suffixes and share-class qualifiers are stripped, hyphens
// and underscores become spaces, and only the first remaining token is
// used. The FI search is sensitive; "Investor AB ser. B" is listed as
// "Investor".
//
// Known precision limits of the first-token rule: trailing punctuation
// survives ("Volvo, AB ser. B" -> "Volvo,") and multi-word names
// under-match ("H & M Hennes & Mauritz" -> "H"). Kept as observed until
// verified against real disclosure data.
func SearchTerm(companyName string) string {
	clean := legalSuffixes.ReplaceAllString(companyName, "")
	clean = strings.ReplaceAll(clean, "-", " ")
	clean = strings.ReplaceAll(clean, "_", " ")
	fields := strings.Fields(clean)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ScrapeInsider fetches and parses insider transactions for a company
// display name. It never returns an error: unreachable site, non-2xx
// responses, and layout changes all resolve to an empty list.
func (s *Scraper) ScrapeInsider(ctx context.Context, companyName string) []model.InsiderTransaction {
	term := SearchTerm(companyName)
	if term == "" {
		return []model.InsiderTransaction{}
	}

	searchURL := fmt.Sprintf("%s?SearchFunctionType=Insyn&Utgivare=%s&button=search",
		s.baseURL, url.QueryEscape(term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return []model.InsiderTransaction{}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "sv-SE,sv;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("FI scraper: request for %q failed: %v", term, err)
		return []model.InsiderTransaction{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("FI scraper: search for %q returned %d", term, resp.StatusCode)
		return []model.InsiderTransaction{}
	}

	transactions, err := ParseDisclosureTable(resp.Body)
	if err != nil {
		log.Printf("FI scraper: failed to parse results for %q: %v", term, err)
		return []model.InsiderTransaction{}
	}
	return transactions
}
