package snapgrid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/snapgrid/snapgrid"
	"github.com/snapgrid/snapgrid/model"
	"github.com/snapgrid/snapgrid/pipeline"
)

func frag(t *testing.T, x, y, w, h float64, text string, confidence float64) model.Fragment {
	t.Helper()
	f, err := model.NewFragmentFromRect(x, y, w, h, text, confidence)
	if err != nil {
		t.Fatalf("NewFragmentFromRect: %v", err)
	}
	return f
}

// tableFragments is a 2x2 capture: a header row and one component row.
func tableFragments(t *testing.T) []model.Fragment {
	return []model.Fragment{
		frag(t, 0, 0, 40, 10, "Part#", 0.99),
		frag(t, 100, 0, 40, 10, "Value", 0.98),
		frag(t, 0, 20, 40, 10, "C1001", 0.97),
		frag(t, 100, 20, 40, 10, "2n", 0.96),
	}
}

// proseFragments reads as two short lines of running text.
func proseFragments(t *testing.T) []model.Fragment {
	return []model.Fragment{
		frag(t, 0, 0, 24, 10, "The", 0.99),
		frag(t, 28, 0, 40, 10, "quick", 0.99),
		frag(t, 0, 20, 40, 10, "brown", 0.99),
		frag(t, 44, 20, 24, 10, "fox", 0.99),
	}
}

func TestRenderTable(t *testing.T) {
	s := pipeline.DefaultSettings()
	s.SplitValueUnit = false

	out, warnings, err := snapgrid.From(tableFragments(t)).Settings(s).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "Part#\tValue\nC1001\t0.002u"; out != want {
		t.Errorf("Render = %q, want %q", out, want)
	}
	// The three non-numeric cells each warn.
	if len(warnings) != 3 {
		t.Errorf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}
}

func TestRenderText(t *testing.T) {
	out, warnings, err := snapgrid.From(proseFragments(t)).Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "The quick\nbrown fox"; out != want {
		t.Errorf("Render = %q, want %q", out, want)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestDetect(t *testing.T) {
	if mode := snapgrid.Must(snapgrid.From(tableFragments(t)).Detect()); mode != snapgrid.ModeTable {
		t.Errorf("table fragments detected as %v", mode)
	}
	if mode := snapgrid.Must(snapgrid.From(proseFragments(t)).Detect()); mode != snapgrid.ModeText {
		t.Errorf("prose fragments detected as %v", mode)
	}
}

func TestModeForcesReconstruction(t *testing.T) {
	base := snapgrid.From(proseFragments(t))

	forced := base.Mode(snapgrid.ModeTable)
	if mode := snapgrid.Must(forced.Detect()); mode != snapgrid.ModeTable {
		t.Errorf("forced mode = %v, want table", mode)
	}

	// Chaining is immutable: the base chain still auto-detects.
	if mode := snapgrid.Must(base.Detect()); mode != snapgrid.ModeText {
		t.Errorf("base mode = %v, want text", mode)
	}
}

func TestMinConfidence(t *testing.T) {
	fragments := []model.Fragment{
		frag(t, 0, 0, 40, 10, "clear", 0.9),
		frag(t, 0, 20, 40, 10, "noise", 0.3),
	}

	out, _, err := snapgrid.From(fragments).MinConfidence(0.5).Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if out != "clear" {
		t.Errorf("Text = %q, want %q", out, "clear")
	}
}

func TestInvalidSettingsFailChain(t *testing.T) {
	s := pipeline.DefaultSettings()
	s.Precision = 0

	_, _, err := snapgrid.From(tableFragments(t)).Settings(s).Render()
	if !errors.Is(err, pipeline.ErrInvalidSetting) {
		t.Errorf("error = %v, want ErrInvalidSetting", err)
	}
}

func TestFromHOCR(t *testing.T) {
	doc := `<html><body>
	 <span class="ocrx_word" title="bbox 0 0 40 10; x_wconf 95">first</span>
	 <span class="ocrx_word" title="bbox 0 20 40 30; x_wconf 95">after</span>
	</body></html>`

	out, _, err := snapgrid.FromHOCR(strings.NewReader(doc)).Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if want := "first\nafter"; out != want {
		t.Errorf("Text = %q, want %q", out, want)
	}
}

func TestProcessSplitsColumns(t *testing.T) {
	grid, _, err := snapgrid.From(tableFragments(t)).Process()
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	// Default settings split the numeric column into value and unit.
	if grid.ColCount() != 3 {
		t.Errorf("processed grid has %d columns, want 3", grid.ColCount())
	}
	if got := grid.Cell(1, 1); got != "0.002u" {
		t.Errorf("value cell = %q, want %q", got, "0.002u")
	}
}

func TestMustRenderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()

	s := pipeline.DefaultSettings()
	s.NotationStyle = "fancy"
	snapgrid.MustRender(snapgrid.From(tableFragments(t)).Settings(s).Render())
}

func TestFormatWarnings(t *testing.T) {
	warnings := []snapgrid.Warning{
		{Row: 0, Col: 0, Message: "first"},
		{Row: 1, Col: 2, Message: "second"},
	}
	got := snapgrid.FormatWarnings(warnings)
	want := "cell (0,0): first\ncell (1,2): second"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}

	if snapgrid.FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}

func TestParseMode(t *testing.T) {
	for name, want := range map[string]snapgrid.Mode{
		"auto":  snapgrid.ModeAuto,
		"table": snapgrid.ModeTable,
		"text":  snapgrid.ModeText,
	} {
		got, err := snapgrid.ParseMode(name)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := snapgrid.ParseMode("grid"); err == nil {
		t.Error("ParseMode should reject unknown names")
	}
}
