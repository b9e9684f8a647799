package timeparse

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	// Pattern describes the zoned US date-time format in CLDR notation.
	Pattern = "MM/dd/yyyy hh:mm a z"

	// civilLayout is the Go layout for everything before the zone token.
	civilLayout = "01/02/2006 03:04 PM"
)

// ParseError reports input that does not match Pattern or names a zone the
// resolver does not recognize.
type ParseError struct {
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %q as %q: %s", e.Input, Pattern, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError reports a timestamp that cannot be rendered with Pattern.
type FormatError struct {
	Time   time.Time
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format %v as %q: %s", e.Time, Pattern, e.Reason)
}

// Codec parses and formats zoned timestamps using Pattern. The zone token is
// mapped to a location by its ZoneResolver, so which identifier "UTC" ends up
// as is decided by the resolver rather than by the host zone database.
//
// A Codec holds no mutable state and is safe for concurrent use.
type Codec struct {
	resolver ZoneResolver
}

// NewCodec creates a Codec backed by r. A nil r uses NewResolver(UTCZoneID).
func NewCodec(r ZoneResolver) *Codec {
	if r == nil {
		r = NewResolver(UTCZoneID)
	}
	return &Codec{resolver: r}
}

var defaultCodec = NewCodec(nil)

// Parse parses s with the default codec, which resolves "UTC" to the zone
// named "UTC".
func Parse(s string) (time.Time, error) {
	return defaultCodec.Parse(s)
}

// Format formats t with the default codec.
func Format(t time.Time) (string, error) {
	return defaultCodec.Format(t)
}

// Parse parses a string such as "05/17/2021 09:23 PM UTC". The civil date and
// time are placed in the location resolved from the trailing zone token.
//
// On failure the returned error is a *ParseError and the time is zero.
func (c *Codec) Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &ParseError{Input: s, Reason: "empty input"}
	}

	// The civil portion has a fixed width; the zone token follows a single space.
	if len(s) < len(civilLayout)+2 || s[len(civilLayout)] != ' ' {
		return time.Time{}, &ParseError{Input: s, Reason: "missing zone token or malformed date"}
	}
	civil, token := s[:len(civilLayout)], s[len(civilLayout)+1:]
	if strings.ContainsFunc(token, unicode.IsSpace) {
		return time.Time{}, &ParseError{Input: s, Reason: fmt.Sprintf("invalid zone token %q", token)}
	}

	t, err := time.Parse(civilLayout, civil)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Reason: "malformed date or time", Err: err}
	}

	// time.Parse accepts "00" for a 12-hour clock; the US formatter does not.
	if civil[11:13] == "00" {
		return time.Time{}, &ParseError{Input: s, Reason: "hour out of range (01-12)"}
	}

	loc, err := c.resolver.Resolve(token)
	if err != nil {
		return time.Time{}, &ParseError{Input: s, Reason: "unrecognized zone token", Err: err}
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// Format renders t using Pattern. The zone token is the identifier of t's
// location exactly as stored, so a time in "Etc/UTC" formats as "Etc/UTC"
// and not as "UTC".
func (c *Codec) Format(t time.Time) (string, error) {
	// yyyy has exactly four digits.
	if y := t.Year(); y < 0 || y > 9999 {
		return "", &FormatError{Time: t, Reason: fmt.Sprintf("year %d out of range (0000-9999)", y)}
	}

	id := ZoneID(t)
	if id == "" {
		return "", &FormatError{Time: t, Reason: "location has no name"}
	}

	return t.Format(civilLayout) + " " + id, nil
}

// ZoneID returns the zone identifier that Format writes for t. Locations
// without a usable name (time.Local, unnamed fixed zones) fall back to the
// zone abbreviation in effect at t.
func ZoneID(t time.Time) string {
	loc := t.Location()
	if loc != time.Local && loc.String() != "" {
		return loc.String()
	}
	name, _ := t.Zone()
	return name
}
