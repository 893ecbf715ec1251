package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is ISO-8601 with millisecond precision and a UTC "Z" suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is a UTC instant truncated to milliseconds.
type Timestamp struct {
	time.Time
}

// NewTimestamp converts t to UTC and drops sub-millisecond precision.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON implements the json.Marshaler interface.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Timestamp: expected string: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("Timestamp: invalid value %q: %w", s, err)
	}
	*t = NewTimestamp(parsed)
	return nil
}
