package convert

// Mode selects the direction of a conversion.
type Mode string

const (
	// ModeParse reads zoned pattern strings.
	ModeParse Mode = "parse"
	// ModeFormat reads plain time values and writes zoned pattern strings.
	ModeFormat Mode = "format"
)

// Options contains all conversion parameters.
type Options struct {
	Inputs []string
	Mode   Mode
	Zone   string // Zone token for ModeFormat (empty = UTC)
	Jobs   int    // Maximum concurrent conversions
}
