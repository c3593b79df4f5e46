package scraper

import (
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/insiderpocket/backend/internal/model"
)

// Column positions in the FI results table. A brittle contract tied to
// the external page's layout:
// Publiceringsdatum | Utgivare | Person | Befattning | Karaktär | ... | Volym | Pris
const (
	colDate      = 0
	colPerson    = 2
	colRole      = 3
	colCharacter = 4
	colVolume    = 6
)

var (
	buyKeywords  = []string{"förvärv", "köp"}
	sellKeywords = []string{"avyttring", "sälj"}
)

// ParseDisclosureTable extracts insider transactions from an FI search
// results page. Rows whose transaction character matches neither the
// buy nor the sell keywords are skipped; disclosure tables include
// non-trade event rows and those are not an error.
func ParseDisclosureTable(body io.Reader) ([]model.InsiderTransaction, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	rows := doc.Find("table.table tbody tr")
	if rows.Length() == 0 {
		rows = doc.Find("table tbody tr")
	}

	transactions := []model.InsiderTransaction{}
	rows.EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(transactions) >= MaxTransactions {
			return false
		}

		cols := row.Find("td")
		if cols.Length() <= colVolume {
			return true
		}

		character := strings.ToLower(colText(cols, colCharacter))
		isBuy := containsAny(character, buyKeywords)
		isSell := containsAny(character, sellKeywords)
		if !isBuy && !isSell {
			return true
		}

		text := "Sold"
		if isBuy {
			text = "Bought"
		}

		// Keep just the date part of "YYYY-MM-DD hh:mm".
		date := colText(cols, colDate)
		if idx := strings.IndexByte(date, ' '); idx > 0 {
			date = date[:idx]
		}

		transactions = append(transactions, model.InsiderTransaction{
			HolderName:      colText(cols, colPerson),
			Role:            colText(cols, colRole),
			TransactionText: text,
			Date:            date,
			Shares:          model.FormatCount(parseVolume(colText(cols, colVolume))),
			Value:           "N/A", // FI does not publish a total value column
			IsBuy:           isBuy,
		})
		return true
	})

	return transactions, nil
}

func colText(cols *goquery.Selection, index int) string {
	return strings.TrimSpace(cols.Eq(index).Text())
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// parseVolume normalizes an FI volume cell: thousands-separator
// whitespace is stripped and comma decimal separators converted before
// integer-parsing. Unparsable volumes default to 0 rather than failing
// the row. Always non-negative.
func parseVolume(raw string) int64 {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', '\t':
			return -1
		case ',':
			return '.'
		default:
			return r
		}
	}, raw)

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	if v < 0 {
		v = -v
	}
	return int64(v)
}
