package timeparse

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	// Zone lookups still work without a host zoneinfo installation.
	_ "time/tzdata"
)

// Identifiers that the "UTC" zone token may resolve to.
const (
	UTCZoneID    = "UTC"
	EtcUTCZoneID = "Etc/UTC"
)

// ErrUnknownZone is returned when a zone token cannot be resolved.
var ErrUnknownZone = errors.New("unknown zone")

// ZoneResolver maps a zone token to a location.
type ZoneResolver interface {
	Resolve(token string) (*time.Location, error)
}

// ZoneResolverFunc adapts a function to the ZoneResolver interface.
type ZoneResolverFunc func(token string) (*time.Location, error)

// Resolve calls f(token).
func (f ZoneResolverFunc) Resolve(token string) (*time.Location, error) {
	return f(token)
}

// usZones maps the short zone names of the US locale to their region zones.
var usZones = map[string]string{
	"GMT":  "GMT",
	"EST":  "America/New_York",
	"EDT":  "America/New_York",
	"CST":  "America/Chicago",
	"CDT":  "America/Chicago",
	"MST":  "America/Denver",
	"MDT":  "America/Denver",
	"PST":  "America/Los_Angeles",
	"PDT":  "America/Los_Angeles",
	"AKST": "America/Anchorage",
	"AKDT": "America/Anchorage",
	"HST":  "Pacific/Honolulu",
}

// Resolver is the standard ZoneResolver. Tokens are matched case-sensitively:
//
//	UTC           the configured UTC identifier ("UTC" or "Etc/UTC")
//	EST, PDT, ... the region zone for a US short zone name
//	Area/City     an IANA zone identifier
//
// The zero value resolves "UTC" to the zone named "UTC".
type Resolver struct {
	utcID string

	mu    sync.Mutex
	cache map[string]*time.Location
}

// NewResolver creates a Resolver that maps the "UTC" token to utcID, which
// should be UTCZoneID or EtcUTCZoneID.
func NewResolver(utcID string) *Resolver {
	return &Resolver{utcID: utcID}
}

// UTCID returns the identifier the "UTC" token resolves to.
func (r *Resolver) UTCID() string {
	if r.utcID == "" {
		return UTCZoneID
	}
	return r.utcID
}

// Resolve implements ZoneResolver.
func (r *Resolver) Resolve(token string) (*time.Location, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty zone token", ErrUnknownZone)
	}

	if token == UTCZoneID {
		switch id := r.UTCID(); id {
		case UTCZoneID:
			return time.UTC, nil
		case EtcUTCZoneID:
			return r.load(id)
		default:
			return nil, fmt.Errorf("unsupported UTC zone identifier %q", id)
		}
	}

	if name, ok := usZones[token]; ok {
		return r.load(name)
	}

	if strings.Contains(token, "/") {
		return r.load(token)
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownZone, token)
}

// Tokens returns the fixed (non-IANA) tokens the resolver recognizes, sorted.
func (r *Resolver) Tokens() []string {
	tokens := slices.Collect(maps.Keys(usZones))
	tokens = append(tokens, UTCZoneID)
	slices.Sort(tokens)
	return tokens
}

func (r *Resolver) load(name string) (*time.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if loc, ok := r.cache[name]; ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrUnknownZone, name, err)
	}

	if r.cache == nil {
		r.cache = make(map[string]*time.Location)
	}
	r.cache[name] = loc

	return loc, nil
}
