package tracker

import (
	"fmt"
	"strings"
	"time"
)

// TimestampFormat is the format used to persist operation timestamps.
// Minute resolution is enough for a ledger written by hand, one entry at a time.
const TimestampFormat = "02-01-2006 15:04"

// Timestamp records when an operation was appended to the ledger, on the
// ledger-local clock.
type Timestamp struct {
	t time.Time
}

// Now returns the current timestamp, truncated to the persisted resolution.
func Now() Timestamp {
	return Timestamp{t: time.Now().Truncate(time.Minute)}
}

// NewTimestamp returns the timestamp for a given instant, truncated to the
// persisted resolution.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Minute)}
}

// ParseTimestamp parses a timestamp in the persisted format.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampFormat, strings.TrimSpace(s))
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t: t}, nil
}

// String formats the timestamp in the persisted format.
func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

// IsZero returns true for the zero timestamp.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }

// Equal reports whether ts and x represent the same instant.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

// MarshalJSON implements the json.Marshaler interface.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
