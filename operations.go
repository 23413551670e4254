package tracker

import (
	"fmt"
)

// Kind is a typed string identifying an operation verb.
type Kind string

// Operation kinds recorded in the ledger.
const (
	KindAdd   Kind = "add"   // open or increase a position
	KindSub   Kind = "sub"   // reduce or close a position
	KindReset Kind = "reset" // set a position to an explicit quantity
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindAdd, KindSub, KindReset:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidOperation, s)
	}
}

// Operation is one immutable ledger record. Operations are appended in
// chronological order and never rewritten; they are the source of truth for
// a symbol's cost history.
type Operation struct {
	Kind     Kind
	Symbol   string // case-sensitive internal symbol, may encode venue or currency
	Quantity Quantity
	Price    Money // unit price paid or received; amount ignored for reset
	Date     Timestamp
}

// NewAdd returns an add operation dated now.
func NewAdd(symbol string, quantity Quantity, price Money) Operation {
	return Operation{Kind: KindAdd, Symbol: symbol, Quantity: quantity, Price: price, Date: Now()}
}

// NewSub returns a sub operation dated now.
func NewSub(symbol string, quantity Quantity, price Money) Operation {
	return Operation{Kind: KindSub, Symbol: symbol, Quantity: quantity, Price: price, Date: Now()}
}

// NewReset returns a reset operation dated now. A zero quantity is valid: it
// records "I hold zero" explicitly, which is distinct from never tracking the
// symbol at all.
func NewReset(symbol string, quantity Quantity, price Money) Operation {
	return Operation{Kind: KindReset, Symbol: symbol, Quantity: quantity, Price: price, Date: Now()}
}

// Validate checks the operation for correctness before it reaches the
// positions table. It returns an error wrapping ErrInvalidOperation, so that
// a malformed operation is rejected before any state changes.
func (op Operation) Validate() error {
	if _, err := ParseKind(string(op.Kind)); err != nil {
		return err
	}
	if op.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidOperation)
	}
	if op.Quantity.IsNegative() {
		return fmt.Errorf("%w: negative quantity %s for %q", ErrInvalidOperation, op.Quantity, op.Symbol)
	}
	// reset accepts zero, add and sub require a strictly positive quantity.
	if op.Kind != KindReset && !op.Quantity.IsPositive() {
		return fmt.Errorf("%w: non-positive quantity %s for %q", ErrInvalidOperation, op.Quantity, op.Symbol)
	}
	if op.Price.IsNegative() {
		return fmt.Errorf("%w: negative price %s for %q", ErrInvalidOperation, op.Price, op.Symbol)
	}
	return nil
}

// Equal reports whether two operations are identical records.
func (op Operation) Equal(o Operation) bool {
	return op.Kind == o.Kind &&
		op.Symbol == o.Symbol &&
		op.Quantity.Equal(o.Quantity) &&
		op.Price.Equal(o.Price) &&
		op.Date.Equal(o.Date)
}

func (op Operation) String() string {
	return fmt.Sprintf("%s %s %s at %s", op.Kind, op.Quantity, op.Symbol, op.Price)
}

// MarshalJSON implements the json.Marshaler interface, keeping a stable
// field order in the persisted ledger.
func (op Operation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("operation", op.Kind)
	w.Append("symbol", op.Symbol)
	w.Append("quantity", op.Quantity)
	w.Append("price", op.Price.Amount())
	w.Optional("currency", op.Price.Currency())
	w.Append("date", op.Date)
	return w.MarshalJSON()
}
