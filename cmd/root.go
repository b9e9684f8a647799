package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/zoned/internal/timeparse"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// utcIDFlag selects the zone identifier the "UTC" token resolves to.
type utcIDFlag string

func (u *utcIDFlag) String() string {
	return string(*u)
}

func (u *utcIDFlag) Set(v string) error {
	switch v {
	case timeparse.UTCZoneID, timeparse.EtcUTCZoneID:
		*u = utcIDFlag(v)
		return nil
	default:
		return fmt.Errorf("must be %q or %q", timeparse.UTCZoneID, timeparse.EtcUTCZoneID)
	}
}

func (u *utcIDFlag) Type() string {
	return "zoneID"
}

var (
	version = "dev"

	// Flags.
	color = colorAuto
	utcID = utcIDFlag(timeparse.UTCZoneID)
	jobs  int
)

var rootCmd = &cobra.Command{
	Use:   "zoned",
	Short: "Parse and format zoned US date-time strings",
	Long: `zoned parses and formats date-time strings in the US pattern

  MM/dd/yyyy hh:mm a z      e.g. "05/17/2021 09:23 PM UTC"

The trailing zone token can be:
  UTC            Resolved to the zone chosen with --utc-id
  EST, PDT, ...  A US short zone name (see "zoned zones")
  Area/City      An IANA zone identifier (e.g., "Europe/Oslo")

Whether "UTC" should become the zone "UTC" or "Etc/UTC" differs between
date/time libraries. Both are equivalent on the wall clock but format
differently, so the choice is explicit here.

Examples:
  zoned parse "05/17/2021 09:23 PM UTC"
  zoned --utc-id Etc/UTC parse "05/17/2021 09:23 PM UTC"
  zoned format 2021-05-17T21:23:00Z
  zoned format --zone PDT "2021-05-17 14:23:00"
  zoned zones "*ST"`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// validateFlags checks the flags shared by every subcommand.
func validateFlags(cmd *cobra.Command, args []string) error {
	if jobs < 1 || jobs > 100 {
		return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
	}
	return nil
}

func init() {
	rootCmd.PersistentPreRunE = validateFlags
	rootCmd.PersistentFlags().Var(&color, "color",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().Var(&utcID, "utc-id",
		"zone identifier for the UTC token: UTC or Etc/UTC")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent conversions")

	rootCmd.AddCommand(parseCmd, formatCmd, zonesCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// colorize reports whether output should be colored.
func colorize() bool {
	switch color {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return term.FromEnv().IsColorEnabled()
	}
}

// newResolver builds the zone resolver selected by --utc-id.
func newResolver() *timeparse.Resolver {
	return timeparse.NewResolver(string(utcID))
}

// readInputs returns args, or the non-blank lines of r when args is empty.
func readInputs(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return inputs, nil
}
