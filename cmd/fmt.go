package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates the ledger and rewrites both files in canonical form"
}
func (*fmtCmd) Usage() string {
	return `ptk fmt

  Validates and formats the ledger. This command reads the whole operations
  record, validates every line, replays it to rebuild the positions snapshot,
  and writes both files back in a canonical JSONL form. It is the way to
  recover a positions file that drifted from the operations record.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.Replay(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: operations record does not replay: %v\n", err)
		return subcommands.ExitFailure
	}

	var operations []tracker.Operation
	for op := range ledger.Operations() {
		operations = append(operations, op)
	}

	if err := rewriteOperations(operations); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := rewritePositions(ledger.Positions()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d operations, %d positions.\n", ledger.Len(), ledger.Positions().Len())
	return subcommands.ExitSuccess
}

// rewriteOperations is only ever used by fmt: everywhere else the operations
// file is strictly append-only.
func rewriteOperations(operations []tracker.Operation) error {
	if err := os.MkdirAll(*ledgerDir, 0755); err != nil {
		return fmt.Errorf("cannot create ledger folder %q: %w", *ledgerDir, err)
	}
	f, err := os.Create(operationsFile())
	if err != nil {
		return fmt.Errorf("cannot create operations file %q: %w", operationsFile(), err)
	}
	defer f.Close()
	return tracker.EncodeOperations(f, operations)
}
