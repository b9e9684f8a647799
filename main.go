// zoned parses and formats date-time strings in the zoned US pattern.
package main

import (
	"fmt"
	"os"

	"github.com/jparise/zoned/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
