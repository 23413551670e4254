package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list recorded operations in ledger order" }
func (*txCmd) Usage() string {
	return `ptk tx [-s <symbol>] [-head <n>] [-tail <n>]

  Lists operations from the ledger, with options for filtering and limiting
  the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "s", "", "Show only operations for this symbol.")
	f.IntVar(&p.head, "head", 0, "Show only the first N operations.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N operations.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var operations []tracker.Operation
	for op := range ledger.Operations() {
		if p.symbol == "" || op.Symbol == p.symbol {
			operations = append(operations, op)
		}
	}

	if p.head > 0 && len(operations) > p.head {
		operations = operations[:p.head]
	}
	if p.tail > 0 && len(operations) > p.tail {
		operations = operations[len(operations)-p.tail:]
	}

	printMarkdown(renderer.Operations(operations))

	return subcommands.ExitSuccess
}
