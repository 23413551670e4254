// Package cmd implements the CLI application to maintain an investment ledger.
// A main package calls Register() to declare the subcommands, and Execute() on
// the user-selected one.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "operations")
	c.Register(&subCmd{}, "operations")
	c.Register(&resetCmd{}, "operations")

	c.Register(&reportCmd{}, "reports")
	c.Register(&txCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerDir = flag.String("ledger-dir", "db", "Path to the folder holding the two ledger files (JSONL format)")
var rulesFile = flag.String("rules-file", ".tracker.yaml", "Path to the optional symbol translation rules file (YAML format)")

func operationsFile() string { return filepath.Join(*ledgerDir, "operations.jsonl") }
func positionsFile() string  { return filepath.Join(*ledgerDir, "positions.jsonl") }

// DecodeLedger loads the two ledger files. Missing files decode as empty
// tables, so the first invocation works on a blank directory.
func DecodeLedger() (*tracker.Ledger, error) {
	operations, err := decodeOperationsFile()
	if err != nil {
		return nil, err
	}
	positions, err := decodePositionsFile()
	if err != nil {
		return nil, err
	}
	return tracker.NewLedgerOf(operations, positions), nil
}

func decodeOperationsFile() ([]tracker.Operation, error) {
	f, err := os.Open(operationsFile())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %q does not exist, starting from an empty operations table", operationsFile())
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open operations file %q: %w", operationsFile(), err)
	}
	defer f.Close()
	return tracker.DecodeOperations(f)
}

func decodePositionsFile() (*tracker.Positions, error) {
	f, err := os.Open(positionsFile())
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, %q does not exist, starting from an empty positions table", positionsFile())
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open positions file %q: %w", positionsFile(), err)
	}
	defer f.Close()
	return tracker.DecodePositions(f)
}

// appendOperation appends a single operation line to the operations file,
// creating it if needed.
func appendOperation(op tracker.Operation) error {
	if err := os.MkdirAll(*ledgerDir, 0755); err != nil {
		return fmt.Errorf("cannot create ledger folder %q: %w", *ledgerDir, err)
	}
	f, err := os.OpenFile(operationsFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open operations file %q: %w", operationsFile(), err)
	}
	defer f.Close()
	return tracker.EncodeOperation(f, op)
}

// rewritePositions fully rewrites the positions snapshot file.
func rewritePositions(positions *tracker.Positions) error {
	if err := os.MkdirAll(*ledgerDir, 0755); err != nil {
		return fmt.Errorf("cannot create ledger folder %q: %w", *ledgerDir, err)
	}
	f, err := os.Create(positionsFile())
	if err != nil {
		return fmt.Errorf("cannot create positions file %q: %w", positionsFile(), err)
	}
	defer f.Close()
	return tracker.EncodePositions(f, positions)
}

// mutate validates and reconciles the operation in memory, and persists both
// tables only if that succeeded. Validation failures leave the files
// untouched.
func mutate(op tracker.Operation) subcommands.ExitStatus {
	if op.Date.IsZero() {
		op.Date = tracker.Now()
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ledger.Append(op); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := appendOperation(op); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := rewritePositions(ledger.Positions()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded: %s\n", renderer.Operation(op))
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
