package cmd

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jparise/zoned/internal/convert"
	"github.com/spf13/cobra"
)

var ignoreCase bool

var zonesCmd = &cobra.Command{
	Use:   "zones [<pattern>]",
	Short: "List recognized zone tokens",
	Long: `List the short zone tokens and the zone identifiers they resolve to.

<pattern> is a glob pattern (e.g., "*ST", "P?T", "{UTC,GMT}") and defaults
to "*". IANA identifiers such as "Europe/Oslo" are always accepted and are
not listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runZones,
}

func init() {
	zonesCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"case-insensitive pattern matching")
}

// filterTokens returns the tokens matching pattern, preserving order.
func filterTokens(tokens []string, pattern string, ignoreCase bool) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	if ignoreCase {
		pattern = strings.ToLower(pattern)
	}

	var matched []string
	for _, token := range tokens {
		name := token
		if ignoreCase {
			name = strings.ToLower(name)
		}

		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, token)
		}
	}

	return matched, nil
}

func runZones(cmd *cobra.Command, args []string) error {
	var pattern string
	if len(args) > 0 {
		pattern = args[0]
	}

	resolver := newResolver()
	tokens, err := filterTokens(resolver.Tokens(), pattern, ignoreCase)
	if err != nil {
		return err
	}

	c := convert.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize(), resolver)
	c.Zones(tokens)
	return nil
}
