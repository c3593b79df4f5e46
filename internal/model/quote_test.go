package model_test

import (
	"math"
	"testing"

	"github.com/insiderpocket/backend/internal/model"
)

func TestChangeFromPreviousClose(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		previousClose float64
		wantAmount    float64
		wantPercent   float64
	}{
		{"positive change", 110, 100, 10, 10},
		{"negative change", 95, 100, -5, -5},
		{"flat", 100, 100, 0, 0},
		{"zero previous close guards to zero", 110, 0, 0, 0},
		{"negative previous close guards to zero", 110, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, percent := model.ChangeFromPreviousClose(tt.price, tt.previousClose)

			if math.Abs(amount-tt.wantAmount) > 1e-9 {
				t.Errorf("amount = %v, want %v", amount, tt.wantAmount)
			}
			if math.Abs(percent-tt.wantPercent) > 1e-9 {
				t.Errorf("percent = %v, want %v", percent, tt.wantPercent)
			}
		})
	}
}

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		currency string
		want     string
	}{
		{"USD", "$"},
		{"SEK", "kr"},
		{"", "$"},
		{"EUR", "EUR"},
	}

	for _, tt := range tests {
		if got := model.CurrencySymbol(tt.currency); got != tt.want {
			t.Errorf("CurrencySymbol(%q) = %q, want %q", tt.currency, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{1500000, "1,500,000"},
		{-50000, "-50,000"},
	}

	for _, tt := range tests {
		if got := model.FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestZeroQuote(t *testing.T) {
	quote := model.ZeroQuote("AAPL", "upstream down")

	if quote.Symbol != "AAPL" {
		t.Errorf("Expected symbol AAPL, got %q", quote.Symbol)
	}
	if quote.Error != "upstream down" {
		t.Errorf("Expected error message, got %q", quote.Error)
	}
	if quote.History == nil {
		t.Error("Expected empty history slice, got nil")
	}
}
