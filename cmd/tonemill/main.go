// Tonemill - a multi-variant colour theme generator
//
// Tonemill derives visually distinct but structurally identical theme
// variants from a single source-of-truth palette, and validates the result
// against WCAG contrast and consistency rules.
package main

import (
	"os"

	"github.com/tonemill/tonemill/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
