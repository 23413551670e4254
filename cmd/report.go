package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	timeout time.Duration
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "value every held position against latest market prices" }
func (*reportCmd) Usage() string {
	return `ptk report [-timeout <duration>]

  Values each held symbol: average entry price and cost basis from the
  operations record, market value and unrealized P&L from the latest market
  price. A symbol the provider cannot price is shown with placeholders, not
  zeros; the report never fails for one symbol.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.timeout, "timeout", 10*time.Second, "Bound on each price lookup; a timeout reads as no data.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rules, err := tracker.LoadTranslationRules(*rulesFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := tracker.Valuate(ledger, rules, tracker.NewYahooLookup(c.timeout))
	printMarkdown(renderer.ValuationMarkdown(report))

	return subcommands.ExitSuccess
}
