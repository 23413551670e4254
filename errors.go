package tracker

import "errors"

// Sentinel errors returned by operation validation and reconciliation.
// Callers test them with errors.Is; messages carry the offending details.
var (
	// ErrInvalidOperation reports a malformed operation (unknown kind,
	// empty symbol, non-positive quantity, negative price). The operation
	// is rejected before any table is touched.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrUnknownSymbol reports a sub against a symbol that holds no position.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrNegativePosition reports a sub that would drive a position below
	// zero. The whole operation is rejected, never clamped.
	ErrNegativePosition = errors.New("negative position")
)
