package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tracker"
	"github.com/google/subcommands"
)

// --- Add Command ---

type addCmd struct {
	symbol   string
	quantity float64
	price    float64
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a purchase, opening or increasing a position" }
func (*addCmd) Usage() string {
	return `ptk add -s <symbol> -q <quantity> -p <price> -c <currency>

  Records a purchase of a symbol. The position is created on the first add
  and increased on every subsequent one.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol (case-sensitive, may carry a venue tag like .IBKR)")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares or units")
	f.Float64Var(&c.price, "p", 0, "Unit price paid")
	f.StringVar(&c.currency, "c", "", "Trading currency code (e.g. USD, ARS)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 || c.price < 0 || c.currency == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(tracker.NewAdd(c.symbol, tracker.Q(c.quantity), tracker.M(c.price, c.currency)))
}

// --- Sub Command ---

type subCmd struct {
	symbol   string
	quantity float64
	price    float64
	currency string
}

func (*subCmd) Name() string     { return "sub" }
func (*subCmd) Synopsis() string { return "record a sale, reducing or closing a position" }
func (*subCmd) Usage() string {
	return `ptk sub -s <symbol> -q <quantity> -p <price> -c <currency>

  Records a sale of a symbol. Fails when the symbol holds no position or when
  the sale would drive the position negative. A position reduced to exactly
  zero is removed from the snapshot.
`
}

func (c *subCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares or units")
	f.Float64Var(&c.price, "p", 0, "Unit price received")
	f.StringVar(&c.currency, "c", "", "Trading currency code")
}

func (c *subCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity <= 0 || c.price < 0 || c.currency == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return mutate(tracker.NewSub(c.symbol, tracker.Q(c.quantity), tracker.M(c.price, c.currency)))
}

// --- Reset Command ---

type resetCmd struct {
	symbol   string
	quantity float64
	price    float64
	currency string
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "set a position to an explicit quantity" }
func (*resetCmd) Usage() string {
	return `ptk reset -s <symbol> -q <quantity> [-p <price> -c <currency>]

  Sets the position of a symbol directly, creating it if needed. Resetting to
  zero is valid and kept in the snapshot: it records "I hold zero", which is
  distinct from never tracking the symbol. A reset carries no cost history.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol")
	f.Float64Var(&c.quantity, "q", 0, "New quantity held, zero allowed")
	f.Float64Var(&c.price, "p", 0, "Unit price for the record, informational only")
	f.StringVar(&c.currency, "c", "", "Trading currency code, informational only")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.quantity < 0 || c.price < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.quantity == 0 {
		fmt.Fprintf(os.Stderr, "Resetting %s to zero: the position stays tracked with an empty holding.\n", c.symbol)
	}
	return mutate(tracker.NewReset(c.symbol, tracker.Q(c.quantity), tracker.M(c.price, c.currency)))
}
