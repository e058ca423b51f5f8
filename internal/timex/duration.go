// Package timex holds small time helpers shared by the config loaders and
// the notification payload builder.
package timex

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ISO8601Millis renders a UTC instant as 2006-01-02T15:04:05.000Z.
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// FormatISO8601 formats t in UTC with millisecond precision.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(ISO8601Millis)
}

// Duration wraps time.Duration so that JSON config files may carry either
// a Go duration string ("10s", "1m") or an integer number of nanoseconds.
type Duration struct {
	time.Duration
}

// MarshalJSON encodes the duration as a Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return errors.New("invalid duration")
	}
}
