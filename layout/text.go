package layout

import (
	"math"
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"github.com/snapgrid/snapgrid/model"
)

// TextConfig tunes text reconstruction.
type TextConfig struct {
	// RowHeightRatio is the row clustering tolerance as a multiple of the
	// mean fragment height.
	RowHeightRatio float64

	// Fixup enables the string-level cleanup pass after assembly: heading
	// artifacts, punctuation spacing, and full-width character folding.
	Fixup bool

	// ListMarkers prefixes clearly indented lines with "- ". Off by
	// default; useful when the capture is a bulleted list whose glyph
	// markers the recognizer dropped.
	ListMarkers bool
}

// DefaultTextConfig returns the text reconstruction defaults.
func DefaultTextConfig() TextConfig {
	return TextConfig{
		RowHeightRatio: DefaultRowHeightRatio,
		Fixup:          true,
		ListMarkers:    false,
	}
}

// TextReconstructor rebuilds a plain text block from fragments, approximating
// the original horizontal spacing with space characters.
type TextReconstructor struct {
	config TextConfig
}

// NewTextReconstructor creates a text reconstructor with default configuration.
func NewTextReconstructor() *TextReconstructor {
	return &TextReconstructor{config: DefaultTextConfig()}
}

// Configure sets the reconstruction parameters.
func (r *TextReconstructor) Configure(config TextConfig) {
	r.config = config
}

// Reconstruct orders fragments into reading order and joins them with
// spacing derived from the pixel gaps. Between neighbours in a row the
// number of spaces is the gap divided by the average character width,
// rounded. Any positive gap yields at least one space; touching or
// overlapping fragments are joined directly. Rows are newline-separated.
func (r *TextReconstructor) Reconstruct(fragments []model.Fragment) string {
	if len(fragments) == 0 {
		return ""
	}

	charW := AverageCharWidth(fragments)

	var lines []string
	for _, cluster := range ClusterRows(fragments, r.config.RowHeightRatio) {
		var sb strings.Builder
		for i, idx := range cluster.Indices {
			if i > 0 {
				prev := fragments[cluster.Indices[i-1]].BBox
				gap := fragments[idx].BBox.Left() - prev.Right()
				sb.WriteString(strings.Repeat(" ", spaceCount(gap, charW)))
			}
			sb.WriteString(fragments[idx].Text)
		}
		lines = append(lines, sb.String())
	}
	text := strings.Join(lines, "\n")

	if r.config.Fixup {
		text = FixupText(text)
	}
	if r.config.ListMarkers {
		text = addListMarkers(fragments, text)
	}
	return text
}

// spaceCount converts a pixel gap into a space count. Rounding is half to
// even so borderline gaps do not inflate.
func spaceCount(gap, charWidth float64) int {
	if gap <= 0 {
		return 0
	}
	n := int(math.RoundToEven(gap / charWidth))
	if n < 1 {
		n = 1
	}
	return n
}

var (
	headingNoSpace    = regexp.MustCompile(`(?m)^(#{1,6})([^#\s])`)
	headingArtifact   = regexp.MustCompile(`(?m)^(?:#\s+){2,}`)
	spaceBeforePunct  = regexp.MustCompile(`[ \t]+([.,;:!?])`)
	noSpaceAfterPunct = regexp.MustCompile(`([.,;:!?])([^\s\d/.,;:!?])`)
)

// FixupText normalizes recognition artifacts in assembled text. It folds
// full-width punctuation and letterforms to their narrow equivalents,
// restores the space after a genuine heading marker, drops runs of repeated
// "# " at line starts that recognizers produce from list glyphs, and
// corrects punctuation spacing: no space before ".,;:!?" and one space
// after. Digits, slashes, and repeated punctuation are exempt from the
// space-after rule so decimals, URLs, and ellipses survive.
//
// The pass is a pure string transform; it never consults fragment geometry.
func FixupText(text string) string {
	text = width.Narrow.String(text)
	text = headingNoSpace.ReplaceAllString(text, "$1 $2")
	text = headingArtifact.ReplaceAllString(text, "")
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = noSpaceAfterPunct.ReplaceAllString(text, "$1 $2")
	return text
}

var markerStart = regexp.MustCompile(`^[-*+\d]`)

// addListMarkers prefixes "- " to lines whose source fragment starts well to
// the right of the leftmost fragment. Lines already carrying a heading or
// list marker, and the first content line, are left alone.
func addListMarkers(fragments []model.Fragment, text string) string {
	if len(fragments) < 2 {
		return text
	}

	minLeft := math.Inf(1)
	for _, f := range fragments {
		minLeft = math.Min(minLeft, f.BBox.Left())
	}
	indentThreshold := AverageCharWidth(fragments) * 2

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	contentSeen := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(stripped, "#") || markerStart.MatchString(stripped) {
			out = append(out, line)
			contentSeen = true
			continue
		}

		if contentSeen {
			if f, ok := findFragmentForLine(fragments, stripped); ok && f.BBox.Left() > minLeft+indentThreshold {
				out = append(out, "- "+line)
				continue
			}
		}
		out = append(out, line)
		contentSeen = true
	}
	return strings.Join(out, "\n")
}

func findFragmentForLine(fragments []model.Fragment, stripped string) (model.Fragment, bool) {
	for _, f := range fragments {
		if strings.Contains(f.Text, stripped) {
			return f, true
		}
	}
	return model.Fragment{}, false
}
