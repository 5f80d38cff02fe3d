// Package format gates the structured-output format version negotiated
// between maildex and its callers (front-ends, scripts). A caller may request
// any version inside the supported window; versions below the active floor
// still work but draw a deprecation warning.
package format

import (
	"fmt"
	"io"

	"github.com/maildex-tools/cli/internal/usage"
)

const (
	// VersionCur is the newest format version this CLI can produce and the
	// default when a caller does not ask for one.
	VersionCur = 5

	// VersionMin is the oldest format version still supported.
	VersionMin = 1

	// VersionMinActive is the oldest format version that is not yet
	// deprecated. Requests in [VersionMin, VersionMinActive) succeed with a
	// warning.
	VersionMinActive = 2
)

// Check validates a requested format version against the supported window.
// Out-of-range requests return a fatal usage error with the distinct
// too-new/too-old exit status; deprecated-but-supported requests write a
// warning to w and succeed. Callers must re-run this check every time the
// requested version may have changed, not just once at startup.
func Check(w io.Writer, requested, cur, min, minActive int) error {
	switch {
	case requested > cur:
		return usage.FormatTooNew(requested, cur)
	case requested < min:
		return usage.FormatTooOld(requested, min)
	case requested < minActive:
		fmt.Fprintf(w,
			"A caller requested deprecated output format version %d, which may not\n"+
				"be supported in the future.\n", requested)
	}
	return nil
}

// CheckCurrent validates requested against this build's supported window.
func CheckCurrent(w io.Writer, requested int) error {
	return Check(w, requested, VersionCur, VersionMin, VersionMinActive)
}
