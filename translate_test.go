package tracker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTranslationRules_MarketSymbol(t *testing.T) {
	rules := DefaultTranslationRules()

	testCases := []struct {
		name     string
		symbol   string
		currency string
		want     string
	}{
		{
			name:     "ARS holding gets the Buenos Aires suffix",
			symbol:   "YPF",
			currency: "ARS",
			want:     "YPF.BA",
		},
		{
			name:     "broker tag is stripped",
			symbol:   "GLD.IBKR",
			currency: "USD",
			want:     "GLD",
		},
		{
			name:     "currency rule wins over the broker tag",
			symbol:   "YPF.IBKR",
			currency: "ARS",
			want:     "YPF.IBKR.BA",
		},
		{
			name:     "plain symbol passes through",
			symbol:   "AAPL",
			currency: "USD",
			want:     "AAPL",
		},
		{
			name:     "unknown currency passes through",
			symbol:   "GOOG",
			currency: "",
			want:     "GOOG",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rules.MarketSymbol(tc.symbol, tc.currency); got != tc.want {
				t.Errorf("MarketSymbol(%q, %q) = %q, want %q", tc.symbol, tc.currency, got, tc.want)
			}
		})
	}
}

func TestLoadTranslationRules(t *testing.T) {
	t.Run("missing file keeps the defaults", func(t *testing.T) {
		rules, err := LoadTranslationRules(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadTranslationRules failed: %v", err)
		}
		if got := rules.MarketSymbol("YPF", "ARS"); got != "YPF.BA" {
			t.Errorf("defaults not applied, got %q", got)
		}
	})

	t.Run("file overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		content := "suffixes:\n  GBP: \".L\"\nbroker_tag: \".DEGIRO\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		rules, err := LoadTranslationRules(path)
		if err != nil {
			t.Fatalf("LoadTranslationRules failed: %v", err)
		}
		if got := rules.MarketSymbol("BARC", "GBP"); got != "BARC.L" {
			t.Errorf("MarketSymbol(BARC, GBP) = %q, want BARC.L", got)
		}
		if got := rules.MarketSymbol("GLD.DEGIRO", "USD"); got != "GLD" {
			t.Errorf("MarketSymbol(GLD.DEGIRO, USD) = %q, want GLD", got)
		}
		// the suffix map was replaced wholesale
		if got := rules.MarketSymbol("YPF", "ARS"); got != "YPF" {
			t.Errorf("MarketSymbol(YPF, ARS) = %q, want YPF", got)
		}
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		if err := os.WriteFile(path, []byte(":\tnot yaml"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadTranslationRules(path); err == nil {
			t.Errorf("LoadTranslationRules succeeded on malformed yaml")
		}
	})
}
