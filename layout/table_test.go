package layout

import (
	"testing"

	"github.com/snapgrid/snapgrid/model"
)

func TestReconstructTable(t *testing.T) {
	// Three rows, two columns, with the value cell missing in the last row.
	fragments := []model.Fragment{
		frag(t, 0, 0, 40, 10, "Part#"),
		frag(t, 100, 0, 40, 10, "Value"),
		frag(t, 0, 20, 40, 10, "C1001"),
		frag(t, 100, 20, 40, 10, "10nFx"),
		frag(t, 0, 40, 40, 10, "R1001"),
	}

	grid := NewTableReconstructor().Reconstruct(fragments)
	if grid.RowCount() != 3 || grid.ColCount() != 2 {
		t.Fatalf("grid is %dx%d, want 3x2", grid.RowCount(), grid.ColCount())
	}

	want := "Part#\tValue\nC1001\t10nFx\nR1001\t"
	if got := grid.TSV(); got != want {
		t.Errorf("TSV = %q, want %q", got, want)
	}
}

func TestReconstructTableMergesAdjacent(t *testing.T) {
	// "Hello" and "World" are 2px apart, well under half a character width,
	// so they join into a single cell instead of forming a phantom column.
	fragments := []model.Fragment{
		frag(t, 0, 0, 40, 10, "Hello"),
		frag(t, 42, 0, 40, 10, "World"),
		frag(t, 200, 0, 40, 10, "Meta1"),
	}

	grid := NewTableReconstructor().Reconstruct(fragments)
	if grid.RowCount() != 1 || grid.ColCount() != 2 {
		t.Fatalf("grid is %dx%d, want 1x2", grid.RowCount(), grid.ColCount())
	}
	if got := grid.Cell(0, 0); got != "Hello World" {
		t.Errorf("cell(0,0) = %q, want %q", got, "Hello World")
	}
	if got := grid.Cell(0, 1); got != "Meta1" {
		t.Errorf("cell(0,1) = %q, want %q", got, "Meta1")
	}
}

func TestReconstructTableEmpty(t *testing.T) {
	grid := NewTableReconstructor().Reconstruct(nil)
	if grid.RowCount() != 0 {
		t.Errorf("empty input produced %d rows", grid.RowCount())
	}
	if got := grid.TSV(); got != "" {
		t.Errorf("TSV of empty grid = %q, want empty", got)
	}
}

func TestReconstructTableConfigure(t *testing.T) {
	// With a huge row tolerance everything collapses into one row.
	fragments := []model.Fragment{
		frag(t, 0, 0, 40, 10, "aaaaa"),
		frag(t, 0, 40, 40, 10, "bbbbb"),
	}

	r := NewTableReconstructor()
	cfg := DefaultTableConfig()
	cfg.RowHeightRatio = 100
	r.Configure(cfg)

	grid := r.Reconstruct(fragments)
	if grid.RowCount() != 1 {
		t.Errorf("grid has %d rows, want 1", grid.RowCount())
	}
}
