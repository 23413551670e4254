package renderer

import (
	"github.com/etnz/tracker"
)

// placeholder marks a value the report could not compute: either the cost
// history is empty (reset-only position) or the provider had no price. It is
// deliberately distinct from zero.
const placeholder = "---"

// Valuation is a render-ready view of a tracker.ValuationReport. Optional
// figures are pre-formatted so the template stays free of conditionals.
type Valuation struct {
	Date     string
	Rows     []ValuationRow
	Warnings []string
}

// ValuationRow is the render-ready view of one valuation row.
type ValuationRow struct {
	Symbol       string
	Quantity     string
	AvgPrice     string
	CostBasis    string
	Currency     string
	MarketValue  string
	UnrealizedPL string
}

// NewValuation creates a render-ready view from a valuation report.
func NewValuation(report *tracker.ValuationReport) *Valuation {
	v := &Valuation{
		Date:     report.Time.Format("2006-01-02 15:04"),
		Rows:     make([]ValuationRow, 0, len(report.Rows)),
		Warnings: report.Warnings,
	}

	for _, row := range report.Rows {
		r := ValuationRow{
			Symbol:       row.Symbol,
			Quantity:     row.Quantity.String(),
			AvgPrice:     placeholder,
			CostBasis:    placeholder,
			Currency:     placeholder,
			MarketValue:  placeholder,
			UnrealizedPL: placeholder,
		}
		if row.Costed {
			r.AvgPrice = row.AvgPrice.String()
			r.CostBasis = row.CostBasis.String()
			r.Currency = row.Currency
		}
		if row.Priced {
			r.MarketValue = row.MarketValue.String()
			if row.Costed {
				r.UnrealizedPL = row.UnrealizedPL.SignedString()
			}
		}
		v.Rows = append(v.Rows, r)
	}
	return v
}

// ValuationMarkdown renders the valuation report to a markdown string.
func ValuationMarkdown(report *tracker.ValuationReport) string {
	return renderTemplate("valuation", "valuation.md", NewValuation(report))
}
