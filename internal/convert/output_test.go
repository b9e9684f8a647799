package convert

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewOutput(t *testing.T) {
	tests := []struct {
		name     string
		colorize bool
	}{
		{name: "with colors", colorize: true},
		{name: "without colors", colorize: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := NewOutput(&bytes.Buffer{}, &bytes.Buffer{}, tt.colorize)
			colorFuncs := []struct {
				name string
				fn   func(string) string
			}{
				{"cyan", output.cyan},
				{"green", output.green},
				{"white", output.white},
				{"yellow", output.yellow},
			}
			for _, cf := range colorFuncs {
				if cf.fn == nil {
					t.Errorf("NewOutput() %s color func is nil", cf.name)
				}
				s := cf.fn("test")
				if tt.colorize {
					if s == "test" {
						t.Errorf("NewOutput() expected %s color func to return ANSI codes", cf.name)
					}
				} else {
					if s != "test" {
						t.Errorf("NewOutput() expected %s color func to return plain string, got %q", cf.name, s)
					}
				}
			}
		})
	}
}

func TestParsed(t *testing.T) {
	stdout := &bytes.Buffer{}
	output := NewOutput(stdout, &bytes.Buffer{}, false)

	output.Parsed("05/17/2021 09:23 PM UTC", time.Date(2021, 5, 17, 21, 23, 0, 0, time.UTC), "UTC")

	want := "05/17/2021 09:23 PM UTC => 2021-05-17T21:23:00Z [UTC]\n"
	if got := stdout.String(); got != want {
		t.Errorf("Parsed() = %q, want %q", got, want)
	}
}

func TestFormattedAndZone(t *testing.T) {
	stdout := &bytes.Buffer{}
	output := NewOutput(stdout, &bytes.Buffer{}, false)

	output.Formatted("05/17/2021 09:23 PM Etc/UTC")
	output.Zone("PST", "America/Los_Angeles")

	want := "05/17/2021 09:23 PM Etc/UTC\nPST\tAmerica/Los_Angeles\n"
	if got := stdout.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestWarningfAndInfof(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	output := NewOutput(stdout, stderr, false)

	output.Warningf("bad input %q", "x")
	output.Infof("%d converted", 3)

	want := "Warning: bad input \"x\"\n3 converted\n"
	if got := stderr.String(); got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestOutputConcurrency(t *testing.T) {
	stdout := &bytes.Buffer{}
	output := NewOutput(stdout, &bytes.Buffer{}, false)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output.Formatted("05/17/2021 09:23 PM UTC")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 50 {
		t.Fatalf("got %d lines, want 50", len(lines))
	}
	for _, line := range lines {
		if line != "05/17/2021 09:23 PM UTC" {
			t.Errorf("garbled line %q", line)
		}
	}
}
