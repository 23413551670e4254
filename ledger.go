package tracker

import (
	"iter"
)

// Ledger holds the two tables of the tracker: the append-only operations
// record and the positions snapshot derived from it.
type Ledger struct {
	operations []Operation
	positions  *Positions
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		operations: make([]Operation, 0),
		positions:  NewPositions(),
	}
}

// NewLedgerOf assembles a ledger from a decoded operations table and its
// persisted positions snapshot. The snapshot is trusted as loaded; use
// Replay to recompute it from the operations record.
func NewLedgerOf(operations []Operation, positions *Positions) *Ledger {
	if positions == nil {
		positions = NewPositions()
	}
	return &Ledger{operations: operations, positions: positions}
}

// Positions returns the current snapshot.
func (l *Ledger) Positions() *Positions { return l.positions }

// Operations iterates over the record in ledger order.
func (l *Ledger) Operations() iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		for _, op := range l.operations {
			if !yield(op) {
				return
			}
		}
	}
}

// Len returns the number of recorded operations.
func (l *Ledger) Len() int { return len(l.operations) }

// Append validates the operation, reconciles it into the positions snapshot
// and records it. On error nothing is recorded and the snapshot is unchanged,
// so a mutating command is all-or-nothing.
func (l *Ledger) Append(op Operation) error {
	if op.Date.IsZero() {
		op.Date = Now()
	}
	if err := l.positions.Apply(op); err != nil {
		return err
	}
	l.operations = append(l.operations, op)
	return nil
}

// OperationsFor iterates over the operations of one symbol and kind, in
// ledger order.
func (l *Ledger) OperationsFor(symbol string, kind Kind) iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		for _, op := range l.operations {
			if op.Symbol == symbol && op.Kind == kind {
				if !yield(op) {
					return
				}
			}
		}
	}
}

// HasHistory reports whether any operation was ever recorded for a symbol.
func (l *Ledger) HasHistory(symbol string) bool {
	for _, op := range l.operations {
		if op.Symbol == symbol {
			return true
		}
	}
	return false
}

// Replay rebuilds the positions snapshot by applying the whole operations
// record to an empty table. It returns the first reconciliation error found,
// leaving the ledger's current snapshot untouched in that case.
func (l *Ledger) Replay() error {
	rebuilt := NewPositions()
	for _, op := range l.operations {
		if err := rebuilt.Apply(op); err != nil {
			return err
		}
	}
	l.positions = rebuilt
	return nil
}
