package tracker

import (
	"fmt"
	"iter"
)

// Position is one row of the derived snapshot: the current net holding of a
// symbol. Its quantity is always >= 0.
type Position struct {
	Symbol   string
	Quantity Quantity
}

// Positions is the derived snapshot of current holdings, one row per symbol.
// Rows keep their insertion order, which is also the report order.
type Positions struct {
	rows  []Position
	index map[string]int // symbol to row offset
}

// NewPositions returns an empty positions table.
func NewPositions() *Positions {
	return &Positions{
		rows:  make([]Position, 0),
		index: make(map[string]int),
	}
}

// Has reports whether a symbol currently holds a position.
func (p *Positions) Has(symbol string) bool {
	_, ok := p.index[symbol]
	return ok
}

// Quantity returns the current holding of a symbol, zero if absent.
func (p *Positions) Quantity(symbol string) Quantity {
	i, ok := p.index[symbol]
	if !ok {
		return Q(0)
	}
	return p.rows[i].Quantity
}

// Len returns the number of held symbols.
func (p *Positions) Len() int { return len(p.rows) }

// Rows iterates over the table in insertion order.
func (p *Positions) Rows() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, row := range p.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Apply reconciles one operation into the table. On error the table is
// left untouched:
//   - add inserts a new row or accumulates into the existing one.
//   - sub fails with ErrUnknownSymbol when the symbol holds no position and
//     with ErrNegativePosition when it would drive the holding below zero;
//     a holding reduced to exactly zero is pruned from the table.
//   - reset sets the quantity directly, creating the row if needed; a reset
//     to zero is kept as an explicit statement, not pruned.
//
// Applying the same sequence of operations to an empty table always yields
// the same final table.
func (p *Positions) Apply(op Operation) error {
	if err := op.Validate(); err != nil {
		return err
	}
	i, held := p.index[op.Symbol]

	switch op.Kind {
	case KindAdd:
		if !held {
			p.insert(Position{Symbol: op.Symbol, Quantity: op.Quantity})
			return nil
		}
		p.rows[i].Quantity = p.rows[i].Quantity.Add(op.Quantity)
		return nil

	case KindSub:
		if !held {
			return fmt.Errorf("%w: cannot sub %q, no position held", ErrUnknownSymbol, op.Symbol)
		}
		remaining := p.rows[i].Quantity.Sub(op.Quantity)
		if remaining.IsNegative() {
			return fmt.Errorf("%w: sub %s of %q exceeds held %s",
				ErrNegativePosition, op.Quantity, op.Symbol, p.rows[i].Quantity)
		}
		if remaining.IsZero() {
			p.remove(op.Symbol)
			return nil
		}
		p.rows[i].Quantity = remaining
		return nil

	case KindReset:
		if !held {
			p.insert(Position{Symbol: op.Symbol, Quantity: op.Quantity})
			return nil
		}
		p.rows[i].Quantity = op.Quantity
		return nil
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidOperation, op.Kind)
}

func (p *Positions) insert(row Position) {
	p.index[row.Symbol] = len(p.rows)
	p.rows = append(p.rows, row)
}

func (p *Positions) remove(symbol string) {
	i, ok := p.index[symbol]
	if !ok {
		return
	}
	p.rows = append(p.rows[:i], p.rows[i+1:]...)
	delete(p.index, symbol)
	// reindex the shifted tail
	for j := i; j < len(p.rows); j++ {
		p.index[p.rows[j].Symbol] = j
	}
}

// MarshalJSON implements the json.Marshaler interface for a single row,
// keeping a stable field order in the persisted snapshot.
func (r Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("position", r.Quantity)
	return w.MarshalJSON()
}
