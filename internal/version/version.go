// Package version provides build version information.
// Variables are set at build time via ldflags.
package version

import (
	"fmt"
	"io"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Fprint writes a one-line version banner for binary.
func Fprint(w io.Writer, binary string) {
	fmt.Fprintf(w, "%s %s (commit %s, built %s)\n", binary, Version, Commit, BuildDate)
}
