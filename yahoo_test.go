package tracker

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestYahooLatestClose(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/AAPL":
			fmt.Fprint(w, `{"chart":{"result":[{"meta":{"currency":"USD","symbol":"AAPL","regularMarketPrice":232.14}}],"error":null}}`)
		case "/NODATA":
			// the chart endpoint answers unknown symbols with an error payload
			fmt.Fprint(w, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	old := yahooBaseURL
	yahooBaseURL = server.URL + "/"
	defer func() { yahooBaseURL = old }()

	t.Run("priced symbol", func(t *testing.T) {
		price, err := yahooLatestClose(server.Client(), "AAPL")
		if err != nil {
			t.Fatalf("yahooLatestClose failed: %v", err)
		}
		if price != 232.14 {
			t.Errorf("price = %v, want 232.14", price)
		}
	})

	t.Run("no data", func(t *testing.T) {
		if _, err := yahooLatestClose(server.Client(), "NODATA"); err == nil {
			t.Errorf("yahooLatestClose succeeded on an empty result")
		}
	})

	t.Run("http error", func(t *testing.T) {
		if _, err := yahooLatestClose(server.Client(), "MISSING"); err == nil {
			t.Errorf("yahooLatestClose succeeded on a 404")
		}
	})
}

func TestYahooLookupDegradesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	old := yahooBaseURL
	yahooBaseURL = server.URL + "/"
	defer func() { yahooBaseURL = old }()

	lookup := NewYahooLookup(0)
	if _, ok := lookup("AAPL"); ok {
		t.Errorf("lookup reported data from a failing provider")
	}
}
