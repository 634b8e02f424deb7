// Package ruleset carries the embedded public-suffix rule snapshot in its
// compact encoding. The snapshot is a trusted build-time constant; an
// updated copy may be served from the rule store at runtime instead.
package ruleset

import (
	_ "embed"
	"strings"
)

// Version identifies the embedded snapshot, by date of generation.
const Version = "2025-08-15"

//go:embed rules.txt
var compact string

// Compact returns the embedded rule text, with surrounding whitespace
// stripped so the trailing newline of the source file never reaches the
// decoder.
func Compact() string {
	return strings.TrimSpace(compact)
}
