package tracker

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PriceLookup returns the latest close for a market ticker, or ok=false when
// the provider has no data for it. Implementations are expected to bound the
// time spent per lookup; a timeout reads as no data.
type PriceLookup func(marketSymbol string) (price float64, ok bool)

// ValuationRow is the valuation of one held symbol.
type ValuationRow struct {
	Symbol   string
	Quantity Quantity

	// Cost figures, derived from the symbol's add/sub history.
	// Costed is false for reset-only positions: a position entered by hand
	// has no cost history, so average price, cost basis and currency are
	// unknown rather than zero.
	Costed    bool
	AvgPrice  Money
	CostBasis Money
	Currency  string

	// Market figures, derived from the latest provider price.
	// Priced is false when the provider has no data: an unpriceable position
	// is reported as such, never as worthless.
	Priced       bool
	MarketValue  Money
	UnrealizedPL Money
}

// ValuationReport is the valuation of every held symbol, in positions table
// order, together with the data-integrity warnings found on the way.
type ValuationReport struct {
	Time     time.Time // generation time
	Rows     []ValuationRow
	Warnings []string
}

// Valuate builds the valuation report for the ledger. One row is produced per
// held symbol, in positions table order:
//
//   - average price is the unweighted mean of the symbol's add prices: the
//     average entry price across trades, not a quantity-weighted average.
//   - cost basis is the quantity-weighted sum over adds, net of the
//     quantity-weighted sum over subs, so it keeps meaning after partial
//     sells.
//   - the trading currency is read from the symbol's first add.
//   - the market price is fetched through lookup on the translated symbol.
//
// A symbol without cost history or without a price degrades its own row and
// never fails the report. A position with no operation history at all is
// reported as a warning.
func Valuate(l *Ledger, rules TranslationRules, lookup PriceLookup) *ValuationReport {
	report := &ValuationReport{
		Time: time.Now(),
		Rows: make([]ValuationRow, 0, l.Positions().Len()),
	}

	for pos := range l.Positions().Rows() {
		row := ValuationRow{Symbol: pos.Symbol, Quantity: pos.Quantity}

		if !l.HasHistory(pos.Symbol) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("position %q has no supporting operation history", pos.Symbol))
		}

		row.Costed, row.AvgPrice, row.CostBasis = costOf(l, pos.Symbol)
		row.Currency = row.AvgPrice.Currency()

		price, ok := lookup(rules.MarketSymbol(pos.Symbol, row.Currency))
		if ok {
			row.Priced = true
			latest := M(price, row.Currency)
			row.MarketValue = latest.Mul(pos.Quantity)
			// without an average entry price there is nothing to compare the
			// market price against; the renderer shows a placeholder then.
			if row.Costed {
				row.UnrealizedPL = latest.Sub(row.AvgPrice).Mul(pos.Quantity)
			}
		}

		report.Rows = append(report.Rows, row)
	}
	return report
}

// costOf aggregates the cost history of one symbol: the unweighted mean of
// add prices and the quantity-weighted cost basis net of subs. costed is
// false when the symbol has no add at all.
func costOf(l *Ledger, symbol string) (costed bool, avg, basis Money) {
	var sum, weighted decimal.Decimal
	var count int64
	var currency string

	for op := range l.OperationsFor(symbol, KindAdd) {
		if count == 0 {
			// a symbol's currency is constant across its adds, read the first.
			currency = op.Price.Currency()
		}
		count++
		sum = sum.Add(op.Price.Amount())
		weighted = weighted.Add(op.Price.Amount().Mul(op.Quantity.value))
	}
	if count == 0 {
		return false, Money{}, Money{}
	}

	for op := range l.OperationsFor(symbol, KindSub) {
		weighted = weighted.Sub(op.Price.Amount().Mul(op.Quantity.value))
	}

	avg = M(sum.Div(decimal.NewFromInt(count)), currency)
	basis = M(weighted, currency)
	return true, avg, basis
}
