package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Timestamp wraps time.Time so snapshot files accept ISO-8601 strings with
// or without the trailing Z. Values are always interpreted as UTC.
type Timestamp struct {
	time.Time
}

const isoLayout = "2006-01-02T15:04:05"

// ParseTimestamp strips a trailing Z and interprets the remainder as UTC.
func ParseTimestamp(value string) (Timestamp, error) {
	trimmed := strings.TrimSuffix(value, "Z")
	if t, err := time.ParseInLocation(isoLayout, trimmed, time.UTC); err == nil {
		return Timestamp{t}, nil
	}

	// Offset-qualified timestamps still parse, normalized back to UTC
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t.UTC()}, nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(isoLayout) + "Z")
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
