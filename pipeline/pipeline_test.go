package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/snapgrid/snapgrid/model"
)

func mustProcessor(t *testing.T, s Settings) *Processor {
	t.Helper()
	p, err := NewProcessor(s)
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}
	return p
}

func TestProcessUnitConversion(t *testing.T) {
	// Header row stays as-is (with warnings); the data row is rescaled to
	// micro, with the sentinel untouched.
	s := DefaultSettings()
	s.SplitValueUnit = false

	grid := model.GridFromRows([][]string{
		{"A", "B", "C"},
		{"1.5m", "2n", "-"},
	})

	res := mustProcessor(t, s).Process(grid)
	if want := "A\tB\tC\n1500u\t0.002u\t-"; res.Grid.TSV() != want {
		t.Errorf("TSV = %q, want %q", res.Grid.TSV(), want)
	}
	if len(res.Warnings) != 3 {
		t.Fatalf("expected 3 warnings for the header cells, got %d: %v", len(res.Warnings), res.Warnings)
	}
	if w := res.Warnings[0]; w.Row != 0 || w.Col != 0 {
		t.Errorf("first warning at (%d,%d), want (0,0)", w.Row, w.Col)
	}
}

func TestProcessThreshold(t *testing.T) {
	s := DefaultSettings()
	s.ApplyThreshold = true
	s.ApplyUnitConversion = false
	s.SplitValueUnit = false

	grid := model.GridFromRows([][]string{{"3n", "10n", "abc"}})

	res := mustProcessor(t, s).Process(grid)
	if want := "-\t10n\tabc"; res.Grid.TSV() != want {
		t.Errorf("TSV = %q, want %q", res.Grid.TSV(), want)
	}
}

func TestProcessThresholdUnparseableValueUntouched(t *testing.T) {
	// A cell that does not parse is never considered below threshold.
	s := DefaultSettings()
	s.ApplyThreshold = true
	s.ApplyUnitConversion = false
	s.SplitValueUnit = false

	grid := model.GridFromRows([][]string{{"N/A"}})

	res := mustProcessor(t, s).Process(grid)
	if got := res.Grid.Cell(0, 0); got != "N/A" {
		t.Errorf("cell = %q, want %q", got, "N/A")
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(res.Warnings))
	}
}

func TestProcessUnparseableThreshold(t *testing.T) {
	// An unparseable threshold disables the filter for every cell.
	s := DefaultSettings()
	s.ApplyThreshold = true
	s.ThresholdValue = "abc"
	s.ApplyUnitConversion = false
	s.SplitValueUnit = false

	grid := model.GridFromRows([][]string{{"3n"}})

	res := mustProcessor(t, s).Process(grid)
	if got := res.Grid.Cell(0, 0); got != "3n" {
		t.Errorf("cell = %q, want %q", got, "3n")
	}
}

func TestProcessNotationScientific(t *testing.T) {
	s := DefaultSettings()
	s.ApplyUnitConversion = false
	s.SplitValueUnit = false
	s.NotationStyle = NotationScientific
	s.Precision = 2

	grid := model.GridFromRows([][]string{{"5.1k", "-"}})

	res := mustProcessor(t, s).Process(grid)
	if want := "5.10E+03\t-"; res.Grid.TSV() != want {
		t.Errorf("TSV = %q, want %q", res.Grid.TSV(), want)
	}
}

func TestProcessSplitWidensNumericColumns(t *testing.T) {
	// Splitting widens only columns that contain at least one numeric cell,
	// and the output stays rectangular.
	s := DefaultSettings()
	s.ApplyUnitConversion = false

	grid := model.GridFromRows([][]string{
		{"Name", "Value"},
		{"R1", "10nF"},
	})

	res := mustProcessor(t, s).Process(grid)
	if res.Grid.ColCount() != 3 {
		t.Fatalf("output has %d columns, want 3", res.Grid.ColCount())
	}
	if want := "Name\tValue\t\nR1\t10n\tF"; res.Grid.TSV() != want {
		t.Errorf("TSV = %q, want %q", res.Grid.TSV(), want)
	}
}

func TestProcessCopyStrategies(t *testing.T) {
	tests := []struct {
		strategy CopyStrategy
		cell     string
		want     string
	}{
		{CopyValueOnly, "10nF", "10n"},
		{CopyUnitOnly, "10nF", "F"},
		{CopyValueOnly, "abc", "abc"},
		{CopyUnitOnly, "abc", "abc"},
		{CopyAll, "10nF", "10n\tF"},
	}
	for _, tt := range tests {
		s := DefaultSettings()
		s.ApplyUnitConversion = false
		s.CopyStrategy = tt.strategy

		grid := model.GridFromRows([][]string{{tt.cell}})
		res := mustProcessor(t, s).Process(grid)
		if got := res.Grid.TSV(); got != tt.want {
			t.Errorf("strategy %q on %q = %q, want %q", tt.strategy, tt.cell, got, tt.want)
		}
	}
}

func TestProcessEmptyCellsAreSilent(t *testing.T) {
	s := DefaultSettings()
	s.SplitValueUnit = false

	grid := model.GridFromRows([][]string{{"", "2n"}})

	res := mustProcessor(t, s).Process(grid)
	if len(res.Warnings) != 0 {
		t.Errorf("empty cells should not warn, got %v", res.Warnings)
	}
	if want := "\t0.002u"; res.Grid.TSV() != want {
		t.Errorf("TSV = %q, want %q", res.Grid.TSV(), want)
	}
}

func TestProcessLeavesInputGridUntouched(t *testing.T) {
	s := DefaultSettings()
	s.SplitValueUnit = false

	grid := model.GridFromRows([][]string{{"2n"}})
	mustProcessor(t, s).Process(grid)

	if got := grid.Cell(0, 0); got != "2n" {
		t.Errorf("input grid mutated: cell = %q", got)
	}
}

func TestProcessTSVRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.SplitValueUnit = false

	out, warnings := mustProcessor(t, s).ProcessTSV("label\t2n")
	if want := "label\t0.002u"; out != want {
		t.Errorf("ProcessTSV = %q, want %q", out, want)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "label") {
		t.Errorf("warnings = %v, want one mentioning the label cell", warnings)
	}
}

func TestNewProcessorRejectsInvalidSettings(t *testing.T) {
	s := DefaultSettings()
	s.Precision = 0

	if _, err := NewProcessor(s); !errors.Is(err, ErrInvalidSetting) {
		t.Errorf("NewProcessor error = %v, want ErrInvalidSetting", err)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Row: 1, Col: 2, Message: "boom"}
	if got := w.String(); got != "cell (1,2): boom" {
		t.Errorf("String = %q", got)
	}
}
