// Package tracker provides the types and functions for maintaining a personal
// investment ledger: an append-only record of buy/sell/reset operations, the
// position snapshot derived from it, and the valuation report built by
// pricing each held symbol against live market data.
//
// The core functionalities include:
//   - Ledger Management: Recording operations (add, sub, reset) in an
//     immutable, chronological record, and deriving the current positions
//     from it.
//   - Reconciliation: Applying one operation at a time to the positions
//     table, rejecting operations that would drive a holding negative or
//     reduce a holding that was never opened.
//   - Valuation: Aggregating each symbol's purchase history into average
//     price and cost basis, and combining it with a latest market price into
//     market value and unrealized P&L.
//   - Symbol Translation: Mapping internal ledger symbols (which may encode
//     currency or holding venue) to the plain tickers a market data provider
//     understands.
//   - Data Persistence: Encoding and decoding the two tables to and from
//     human-readable, version-controllable JSONL files.
//
// This package serves as the foundational logic for the `ptk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package tracker
