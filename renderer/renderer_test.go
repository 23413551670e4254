package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/tracker"
)

func report(t *testing.T, operations ...tracker.Operation) *tracker.ValuationReport {
	t.Helper()
	l := tracker.NewLedger()
	for _, op := range operations {
		if err := l.Append(op); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
	lookup := func(marketSymbol string) (float64, bool) {
		if marketSymbol == "AAPL" {
			return 200, true
		}
		return 0, false
	}
	return tracker.Valuate(l, tracker.DefaultTranslationRules(), lookup)
}

func TestValuationMarkdown(t *testing.T) {
	r := report(t,
		tracker.NewAdd("AAPL", tracker.Q(10), tracker.M(150.0, "USD")),
		tracker.NewAdd("AAPL", tracker.Q(10), tracker.M(170.0, "USD")),
		tracker.NewReset("GOOG", tracker.Q(5), tracker.Money{}),
	)
	md := ValuationMarkdown(r)

	if !strings.Contains(md, "# Current Portfolio") {
		t.Errorf("missing title:\n%s", md)
	}
	if !strings.Contains(md, "| SYMBOL | POSITION | AVG PRICE | COST BASIS | MARKET VALUE | UNREALIZED P&L |") {
		t.Errorf("missing table header:\n%s", md)
	}
	// the priced and costed row shows real figures
	if !strings.Contains(md, "| AAPL | 20 |") {
		t.Errorf("missing AAPL row:\n%s", md)
	}
	if !strings.Contains(md, "$160.00") {
		t.Errorf("missing average price:\n%s", md)
	}
	// the reset-only unpriceable row shows placeholders, not zeros
	if !strings.Contains(md, "| GOOG | 5 | --- | --- | --- | --- |") {
		t.Errorf("missing degraded GOOG row:\n%s", md)
	}
}

func TestValuationMarkdown_Warnings(t *testing.T) {
	r := &tracker.ValuationReport{
		Time:     time.Now(),
		Warnings: []string{`position "XXX" has no supporting operation history`},
	}
	md := ValuationMarkdown(r)
	if !strings.Contains(md, "no supporting operation history") {
		t.Errorf("missing warning:\n%s", md)
	}
}

func TestOperations(t *testing.T) {
	ops := []tracker.Operation{
		tracker.NewAdd("AAPL", tracker.Q(10), tracker.M(150.0, "USD")),
		tracker.NewSub("AAPL", tracker.Q(5), tracker.M(170.0, "USD")),
	}
	md := Operations(ops)

	if !strings.Contains(md, "| DATE | OPERATION | SYMBOL | QUANTITY | PRICE |") {
		t.Errorf("missing table header:\n%s", md)
	}
	if !strings.Contains(md, "| add | AAPL | 10 |") {
		t.Errorf("missing add row:\n%s", md)
	}
	if !strings.Contains(md, "| sub | AAPL | 5 |") {
		t.Errorf("missing sub row:\n%s", md)
	}
}

func TestOperation(t *testing.T) {
	if got := Operation(tracker.NewReset("GOOG", tracker.Q(5), tracker.Money{})); got != "Reset GOOG to 5" {
		t.Errorf("Operation() = %q", got)
	}
}
