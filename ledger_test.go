package tracker

import (
	"errors"
	"testing"
)

func TestLedger_Append(t *testing.T) {
	l := NewLedger()

	if err := l.Append(NewAdd("AAPL", Q(10), USD(150))); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if got := l.Positions().Quantity("AAPL"); !got.Equal(Q(10)) {
		t.Errorf("Quantity(AAPL) = %s, want 10", got)
	}
}

func TestLedger_Append_AllOrNothing(t *testing.T) {
	l := NewLedger()
	if err := l.Append(NewAdd("AAPL", Q(10), USD(150))); err != nil {
		t.Fatal(err)
	}

	// a rejected operation must not be recorded
	if err := l.Append(NewSub("AAPL", Q(25), USD(150))); !errors.Is(err, ErrNegativePosition) {
		t.Fatalf("Append error = %v, want ErrNegativePosition", err)
	}
	if l.Len() != 1 {
		t.Errorf("rejected operation was recorded, Len() = %d, want 1", l.Len())
	}
	if got := l.Positions().Quantity("AAPL"); !got.Equal(Q(10)) {
		t.Errorf("Quantity(AAPL) = %s, want the prior 10", got)
	}
}

func TestLedger_OperationsFor(t *testing.T) {
	l := NewLedger()
	for _, op := range []Operation{
		NewAdd("AAPL", Q(10), USD(150)),
		NewAdd("GOOG", Q(5), USD(2800)),
		NewSub("AAPL", Q(2), USD(160)),
		NewAdd("AAPL", Q(10), USD(170)),
	} {
		if err := l.Append(op); err != nil {
			t.Fatal(err)
		}
	}

	var adds int
	for op := range l.OperationsFor("AAPL", KindAdd) {
		if op.Symbol != "AAPL" || op.Kind != KindAdd {
			t.Errorf("unexpected operation %v", op)
		}
		adds++
	}
	if adds != 2 {
		t.Errorf("AAPL adds = %d, want 2", adds)
	}

	if !l.HasHistory("GOOG") {
		t.Errorf("HasHistory(GOOG) = false, want true")
	}
	if l.HasHistory("MELI") {
		t.Errorf("HasHistory(MELI) = true, want false")
	}
}

func TestLedger_Replay(t *testing.T) {
	operations := []Operation{
		NewAdd("AAPL", Q(10), USD(150)),
		NewAdd("AAPL", Q(10), USD(170)),
		NewSub("AAPL", Q(5), USD(160)),
		NewReset("GOOG", Q(3), Money{}),
	}
	// assemble with a deliberately stale snapshot
	stale := NewPositions()
	if err := stale.Apply(NewAdd("AAPL", Q(1), USD(1))); err != nil {
		t.Fatal(err)
	}
	l := NewLedgerOf(operations, stale)

	if err := l.Replay(); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if got := l.Positions().Quantity("AAPL"); !got.Equal(Q(15)) {
		t.Errorf("Quantity(AAPL) = %s, want 15", got)
	}
	if got := l.Positions().Quantity("GOOG"); !got.Equal(Q(3)) {
		t.Errorf("Quantity(GOOG) = %s, want 3", got)
	}

	// replaying an unreplayable record reports the error and keeps the snapshot
	bad := NewLedgerOf([]Operation{NewSub("AAPL", Q(1), USD(1))}, nil)
	if err := bad.Replay(); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Replay error = %v, want ErrUnknownSymbol", err)
	}
}
