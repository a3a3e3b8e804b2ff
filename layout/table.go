package layout

import (
	"math"

	"github.com/snapgrid/snapgrid/model"
)

// TableConfig tunes table reconstruction.
type TableConfig struct {
	// RowHeightRatio is the row clustering tolerance as a multiple of the
	// mean fragment height.
	RowHeightRatio float64

	// ColumnGapRatio scales the average character width into the minimum
	// gap between x-centers that separates two columns.
	ColumnGapRatio float64

	// HorizontalMergeRatio scales the average character width into the
	// maximum gap at which two neighbouring fragments in a row are joined
	// into one cell before column detection. Slight overlaps merge too.
	HorizontalMergeRatio float64
}

// DefaultTableConfig returns the table reconstruction defaults.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		RowHeightRatio:       DefaultRowHeightRatio,
		ColumnGapRatio:       DefaultColumnGapRatio,
		HorizontalMergeRatio: 0.5,
	}
}

// TableReconstructor assigns fragments to (row, column) cells and emits a
// rectangular grid. Column positions are detected across the entire fragment
// set, not per row, so every row has the same column count; intersections
// with no fragment hold the empty string.
type TableReconstructor struct {
	config TableConfig
}

// NewTableReconstructor creates a table reconstructor with default configuration.
func NewTableReconstructor() *TableReconstructor {
	return &TableReconstructor{config: DefaultTableConfig()}
}

// Configure sets the reconstruction parameters.
func (r *TableReconstructor) Configure(config TableConfig) {
	r.config = config
}

// Reconstruct builds a grid from fragments. Fragments are clustered into
// rows, near-touching neighbours within a row are merged into single cells,
// column centers are detected globally, and each cell lands at the nearest
// column. Multiple fragments mapping to the same cell are concatenated with
// a single space in x-order. An empty fragment set yields an empty grid.
func (r *TableReconstructor) Reconstruct(fragments []model.Fragment) *model.Grid {
	if len(fragments) == 0 {
		return model.NewGrid(0, 0)
	}

	charW := AverageCharWidth(fragments)
	mergeGap := charW * r.config.HorizontalMergeRatio

	rows := make([][]model.Fragment, 0, len(fragments))
	for _, cluster := range ClusterRows(fragments, r.config.RowHeightRatio) {
		row := make([]model.Fragment, 0, len(cluster.Indices))
		for _, idx := range cluster.Indices {
			row = append(row, fragments[idx])
		}
		rows = append(rows, mergeRow(row, mergeGap))
	}

	merged := make([]model.Fragment, 0, len(fragments))
	for _, row := range rows {
		merged = append(merged, row...)
	}
	centers := ClusterColumns(merged, r.config.ColumnGapRatio)

	grid := model.NewGrid(len(rows), len(centers))
	for i, row := range rows {
		for _, f := range row {
			col := NearestColumn(centers, f.BBox.CenterX())
			_ = grid.AppendToCell(i, col, f.Text)
		}
	}
	return grid
}

// mergeRow joins x-adjacent fragments whose gap (or overlap) is within
// maxGap. Joined fragments keep the lower confidence of the pair.
func mergeRow(row []model.Fragment, maxGap float64) []model.Fragment {
	if len(row) == 0 {
		return row
	}

	out := []model.Fragment{row[0]}
	for _, cur := range row[1:] {
		prev := &out[len(out)-1]
		gap := cur.BBox.Left() - prev.BBox.Right()
		if math.Abs(gap) < maxGap {
			prev.Text += " " + cur.Text
			prev.BBox = prev.BBox.Union(cur.BBox)
			prev.Confidence = math.Min(prev.Confidence, cur.Confidence)
			continue
		}
		out = append(out, cur)
	}
	return out
}
