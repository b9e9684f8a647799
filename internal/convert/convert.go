// Package convert runs batches of zoned timestamp conversions.
package convert

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jparise/zoned/internal/timeparse"
	"golang.org/x/sync/semaphore"
)

// Converter orchestrates a batch of conversions.
type Converter struct {
	output   *Output
	resolver timeparse.ZoneResolver
	codec    *timeparse.Codec
}

// New creates a new Converter whose zone tokens are resolved by resolver.
func New(stdout, stderr io.Writer, colorize bool, resolver timeparse.ZoneResolver) *Converter {
	if resolver == nil {
		resolver = timeparse.NewResolver(timeparse.UTCZoneID)
	}
	return &Converter{
		output:   NewOutput(stdout, stderr, colorize),
		resolver: resolver,
		codec:    timeparse.NewCodec(resolver),
	}
}

type result struct {
	time time.Time
	text string
	err  error
}

// Run converts every input and writes the results in input order. Inputs
// that fail are reported as warnings; Run only fails when all of them do.
func (c *Converter) Run(ctx context.Context, opts *Options) error {
	if len(opts.Inputs) == 0 {
		c.output.Warningf("No input to convert")
		return nil
	}

	var loc *time.Location
	switch opts.Mode {
	case ModeParse:
	case ModeFormat:
		zone := opts.Zone
		if zone == "" {
			zone = timeparse.UTCZoneID
		}
		var err error
		loc, err = c.resolver.Resolve(zone)
		if err != nil {
			return fmt.Errorf("invalid zone %q: %w", zone, err)
		}
	default:
		return fmt.Errorf("unknown conversion mode %q", opts.Mode)
	}

	jobs := max(opts.Jobs, 1)
	results := make([]result, len(opts.Inputs))

	// Convert concurrently with bounded parallelism
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(jobs))

	for i, input := range opts.Inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}

		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			defer sem.Release(1)

			if opts.Mode == ModeParse {
				results[i] = c.parse(input)
			} else {
				results[i] = c.format(input, loc)
			}
		}(i, input)
	}

	wg.Wait()

	errorCount := 0
	for i, r := range results {
		if r.err != nil {
			errorCount++
			c.output.Warningf("%s: %v", opts.Inputs[i], r.err)
			continue
		}

		if opts.Mode == ModeParse {
			c.output.Parsed(opts.Inputs[i], r.time, timeparse.ZoneID(r.time))
		} else {
			c.output.Formatted(r.text)
		}
	}

	if errorCount == len(results) {
		return fmt.Errorf("failed to convert all %d inputs", len(results))
	}
	if errorCount > 0 {
		c.output.Infof("Converted %d of %d inputs", len(results)-errorCount, len(results))
	}

	return nil
}

// Zones writes each token alongside the identifier it resolves to. Tokens
// that fail to resolve are reported as warnings.
func (c *Converter) Zones(tokens []string) {
	if len(tokens) == 0 {
		c.output.Warningf("No zones match the filter")
		return
	}

	for _, token := range tokens {
		loc, err := c.resolver.Resolve(token)
		if err != nil {
			c.output.Warningf("%s: %v", token, err)
			continue
		}
		c.output.Zone(token, loc.String())
	}
}

func (c *Converter) parse(input string) result {
	t, err := c.codec.Parse(input)
	if err != nil {
		return result{err: err}
	}
	return result{time: t}
}

func (c *Converter) format(input string, loc *time.Location) result {
	t, err := timeparse.ParseTime(input, loc)
	if err != nil {
		return result{err: err}
	}

	s, err := c.codec.Format(t)
	if err != nil {
		return result{err: err}
	}
	return result{time: t, text: s}
}
