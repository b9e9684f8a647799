// Package timeparse parses and formats zoned timestamps in the US
// "MM/dd/yyyy hh:mm a z" pattern.
package timeparse

import (
	"fmt"
	"time"
)

// ParseTime reads a plain time value and places it in loc.
// Supported formats:
//   - YYYY-MM-DD (midnight, civil time in loc)
//   - YYYY-MM-DD HH:MM:SS (civil time in loc)
//   - RFC3339: 2018-10-27T10:00:00Z (the instant, converted to loc)
//
// A nil loc means UTC.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.ParseInLocation(time.DateOnly, s, loc); err == nil {
		return t, nil
	}

	if t, err := time.ParseInLocation(time.DateTime, s, loc); err == nil {
		return t, nil
	}

	// RFC3339 carries its own offset
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), nil
	}

	return time.Time{}, fmt.Errorf("invalid time format %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, or RFC3339)", s)
}
