package tracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// operationRecord is a specialized struct for decoding one operations line.
type operationRecord struct {
	Operation string          `json:"operation"`
	Symbol    string          `json:"symbol"`
	Quantity  Quantity        `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Date      Timestamp       `json:"date"`
}

// positionRecord is a specialized struct for decoding one positions line.
type positionRecord struct {
	Symbol   string   `json:"symbol"`
	Position Quantity `json:"position"`
}

// DecodeOperations decodes the append-only operations table from a stream of
// JSONL data. Malformed lines fail the whole decode: a ledger with invalid
// records must be fixed, not silently truncated.
func DecodeOperations(r io.Reader) ([]Operation, error) {
	operations := make([]Operation, 0)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var rec operationRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("%w: operations line %d: %v", ErrInvalidOperation, line, err)
		}
		op := Operation{
			Kind:     Kind(rec.Operation),
			Symbol:   rec.Symbol,
			Quantity: rec.Quantity,
			Price:    M(rec.Price, rec.Currency),
			Date:     rec.Date,
		}
		if err := op.Validate(); err != nil {
			return nil, fmt.Errorf("operations line %d: %w", line, err)
		}
		operations = append(operations, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading operations: %w", err)
	}
	return operations, nil
}

// EncodeOperations writes the whole operations table as JSONL.
func EncodeOperations(w io.Writer, operations []Operation) error {
	for _, op := range operations {
		if err := EncodeOperation(w, op); err != nil {
			return err
		}
	}
	return nil
}

// EncodeOperation appends a single operation line. This is the only write the
// operations table ever sees in a mutating command: records are appended,
// never rewritten.
func EncodeOperation(w io.Writer, op Operation) error {
	content, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("cannot encode operation %s: %w", op, err)
	}
	if _, err := w.Write(append(content, '\n')); err != nil {
		return fmt.Errorf("cannot write operation %s: %w", op, err)
	}
	return nil
}

// DecodePositions decodes the positions snapshot from a stream of JSONL data.
func DecodePositions(r io.Reader) (*Positions, error) {
	positions := NewPositions()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var rec positionRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("positions line %d: %w", line, err)
		}
		if rec.Symbol == "" {
			return nil, fmt.Errorf("positions line %d: empty symbol", line)
		}
		if rec.Position.IsNegative() {
			return nil, fmt.Errorf("positions line %d: negative position %s for %q", line, rec.Position, rec.Symbol)
		}
		if positions.Has(rec.Symbol) {
			return nil, fmt.Errorf("positions line %d: duplicate symbol %q", line, rec.Symbol)
		}
		positions.insert(Position{Symbol: rec.Symbol, Quantity: rec.Position})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}
	return positions, nil
}

// EncodePositions rewrites the whole positions snapshot as JSONL, in table
// order.
func EncodePositions(w io.Writer, positions *Positions) error {
	for row := range positions.Rows() {
		content, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("cannot encode position %q: %w", row.Symbol, err)
		}
		if _, err := w.Write(append(content, '\n')); err != nil {
			return fmt.Errorf("cannot write position %q: %w", row.Symbol, err)
		}
	}
	return nil
}
