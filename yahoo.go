package tracker

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// This file contains functions to access the Yahoo Finance chart API, the
// latest-price provider behind the report command.

// yahooBaseURL is a variable so tests can point the client at a fake server.
var yahooBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// yahooLatestClose fetches the latest close for a market ticker.
//
//	{
//	  "chart": {
//	    "result": [
//	      {
//	        "meta": {
//	          "currency": "USD",
//	          "symbol": "AAPL",
//	          "regularMarketPrice": 232.14,
//	          ...
func yahooLatestClose(client *http.Client, symbol string) (float64, error) {
	addr := yahooBaseURL + url.PathEscape(symbol) + "?interval=1d&range=1d"

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	if val < 0 {
		return math.NaN(), fmt.Errorf("negative price for %q: %v", symbol, val)
	}
	return val, nil
}

// NewYahooLookup returns a PriceLookup backed by the Yahoo Finance chart API.
// Responses are cached on disk for the day; any fetch error, timeout or
// malformed payload reads as no data for that symbol only.
func NewYahooLookup(timeout time.Duration) PriceLookup {
	client := daily(timeout)
	return func(marketSymbol string) (float64, bool) {
		price, err := yahooLatestClose(client, marketSymbol)
		if err != nil {
			log.Printf("no price for %q: %v", marketSymbol, err)
			return 0, false
		}
		return price, true
	}
}
