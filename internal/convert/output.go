package convert

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mgutz/ansi"
)

// Output handles all output formatting with optional color support.
type Output struct {
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer

	cyan   func(string) string
	green  func(string) string
	white  func(string) string
	yellow func(string) string
}

// NewOutput creates a new Output with optional color support.
func NewOutput(stdout, stderr io.Writer, colorize bool) *Output {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	return &Output{
		stdout: stdout,
		stderr: stderr,
		cyan:   color("cyan"),
		green:  color("green+b"),
		white:  color("white"),
		yellow: color("yellow"),
	}
}

// Parsed writes a parse result in the format: input => RFC3339 [zone].
func (o *Output) Parsed(input string, t time.Time, zoneID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	fmt.Fprintf(o.stdout, "%s => %s [%s]\n",
		o.white(input),
		o.cyan(t.Format(time.RFC3339)),
		o.green(zoneID))
}

// Formatted writes a zoned pattern string.
func (o *Output) Formatted(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stdout, "%s\n", o.cyan(s))
}

// Zone writes a zone token and the identifier it resolves to.
func (o *Output) Zone(token, zoneID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stdout, "%s\t%s\n", o.white(token), o.green(zoneID))
}

// Warningf writes a formatted warning message to stderr.
func (o *Output) Warningf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, o.yellow("Warning: ")+format+"\n", args...)
}

// Infof writes a formatted informational message to stderr.
func (o *Output) Infof(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.stderr, format+"\n", args...)
}
