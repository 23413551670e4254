package tracker

// USD is a helper for tests to create US dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// ARS is a helper for tests to create argentine peso money from const
func ARS(v float64) Money { return M(v, "ARS") }

// fixedLookup is a helper for tests: a price oracle backed by a map, symbols
// absent from the map have no data.
func fixedLookup(prices map[string]float64) PriceLookup {
	return func(marketSymbol string) (float64, bool) {
		price, ok := prices[marketSymbol]
		return price, ok
	}
}
