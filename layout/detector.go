package layout

import "github.com/snapgrid/snapgrid/model"

// Mode classifies a fragment set as tabular or free-running text.
type Mode int

const (
	ModeText Mode = iota
	ModeTable
)

// String returns "text" or "table".
func (m Mode) String() string {
	if m == ModeTable {
		return "table"
	}
	return "text"
}

// DetectorConfig tunes the table-vs-text heuristic.
type DetectorConfig struct {
	// RowHeightRatio is the row clustering tolerance as a multiple of the
	// mean fragment height.
	RowHeightRatio float64

	// ColumnGapRatio scales the average character width into the minimum
	// horizontal gap that separates two cells within a row.
	ColumnGapRatio float64

	// MinTableRows is how many multi-cell rows must exist before the set
	// counts as a table.
	MinTableRows int

	// MinRowFragments is the minimum number of fragments a row needs to
	// count as multi-cell.
	MinRowFragments int
}

// Default detection thresholds.
const (
	DefaultMinTableRows    = 2
	DefaultMinRowFragments = 2
)

// DefaultDetectorConfig returns the detector defaults.
func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		RowHeightRatio:  DefaultRowHeightRatio,
		ColumnGapRatio:  DefaultColumnGapRatio,
		MinTableRows:    DefaultMinTableRows,
		MinRowFragments: DefaultMinRowFragments,
	}
}

// DetectMode classifies fragments as ModeTable or ModeText. The heuristic
// clusters fragments into rows and counts rows that look multi-cell: at
// least MinRowFragments fragments with at least one horizontal gap between
// neighbours wider than ColumnGapRatio times the average character width.
// When MinTableRows such rows exist the set is a table; everything else,
// including sets of fewer than three fragments, is text.
//
// The decision is deterministic for a given input and configuration.
// Non-positive configuration fields select their defaults.
func DetectMode(fragments []model.Fragment, cfg DetectorConfig) Mode {
	if len(fragments) < 3 {
		return ModeText
	}

	gapRatio := cfg.ColumnGapRatio
	if gapRatio <= 0 {
		gapRatio = DefaultColumnGapRatio
	}
	minRows := cfg.MinTableRows
	if minRows <= 0 {
		minRows = DefaultMinTableRows
	}
	minFragments := cfg.MinRowFragments
	if minFragments <= 0 {
		minFragments = DefaultMinRowFragments
	}

	charW := AverageCharWidth(fragments)
	gapThreshold := charW * gapRatio

	columnarRows := 0
	for _, row := range ClusterRows(fragments, cfg.RowHeightRatio) {
		if len(row.Indices) < minFragments {
			continue
		}
		for i := 1; i < len(row.Indices); i++ {
			prev := fragments[row.Indices[i-1]].BBox
			cur := fragments[row.Indices[i]].BBox
			if cur.Left()-prev.Right() > gapThreshold {
				columnarRows++
				break
			}
		}
	}

	if columnarRows >= minRows {
		return ModeTable
	}
	return ModeText
}
