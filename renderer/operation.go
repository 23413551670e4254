package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/tracker"
)

// Operation renders one ledger operation to a string.
func Operation(op tracker.Operation) string {
	switch op.Kind {
	case tracker.KindAdd:
		return fmt.Sprintf("Added %s of %s at %s", op.Quantity, op.Symbol, op.Price)
	case tracker.KindSub:
		return fmt.Sprintf("Subtracted %s of %s at %s", op.Quantity, op.Symbol, op.Price)
	case tracker.KindReset:
		return fmt.Sprintf("Reset %s to %s", op.Symbol, op.Quantity)
	default:
		return string(op.Kind)
	}
}

// Operations renders the operations record to a markdown table, in ledger
// order.
func Operations(operations []tracker.Operation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Operations\n\n")
	fmt.Fprintln(&b, "| DATE | OPERATION | SYMBOL | QUANTITY | PRICE |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, op := range operations {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			op.Date, op.Kind, op.Symbol, op.Quantity, op.Price)
	}
	return b.String()
}
