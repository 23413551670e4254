package tracker

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TranslationRules maps internal ledger symbols to the plain market tickers a
// price provider understands. The internal namespace distinguishes trading
// currency and holding venue; the provider does not.
type TranslationRules struct {
	// Suffixes appends a market suffix to the symbol by trading currency,
	// e.g. ARS holdings trade on the Buenos Aires exchange as "SYM.BA".
	Suffixes map[string]string `yaml:"suffixes"`
	// BrokerTag is the venue tag stripped from symbols held at a specific
	// broker, e.g. "GLD.IBKR" is looked up as "GLD".
	BrokerTag string `yaml:"broker_tag"`
}

// DefaultTranslationRules returns the built-in rules.
func DefaultTranslationRules() TranslationRules {
	return TranslationRules{
		Suffixes:  map[string]string{"ARS": ".BA"},
		BrokerTag: ".IBKR",
	}
}

// LoadTranslationRules reads rules from a YAML file. A missing file is not an
// error: the built-in rules apply. Fields absent from the file keep their
// built-in value.
func LoadTranslationRules(path string) (TranslationRules, error) {
	rules := DefaultTranslationRules()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return rules, nil
	}
	if err != nil {
		return rules, fmt.Errorf("cannot read translation rules %q: %w", path, err)
	}
	var loaded TranslationRules
	if err := yaml.Unmarshal(content, &loaded); err != nil {
		return rules, fmt.Errorf("cannot parse translation rules %q: %w", path, err)
	}
	if loaded.Suffixes != nil {
		rules.Suffixes = loaded.Suffixes
	}
	if loaded.BrokerTag != "" {
		rules.BrokerTag = loaded.BrokerTag
	}
	return rules, nil
}

// MarketSymbol translates an internal symbol into the market ticker to look
// up. The currency rule wins over the broker tag rule; symbols matched by
// neither pass through unchanged.
func (r TranslationRules) MarketSymbol(symbol, currency string) string {
	if suffix, ok := r.Suffixes[currency]; ok {
		return symbol + suffix
	}
	if r.BrokerTag != "" && strings.HasSuffix(symbol, r.BrokerTag) {
		return strings.TrimSuffix(symbol, r.BrokerTag)
	}
	return symbol
}
