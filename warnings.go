package snapgrid

import (
	"strings"

	"github.com/snapgrid/snapgrid/pipeline"
)

// Warning is a non-fatal diagnostic produced while processing cells.
// Warnings never interrupt reconstruction; they are returned alongside the
// result for display in a log view.
type Warning = pipeline.Warning

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
