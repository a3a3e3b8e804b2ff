package pipeline

import (
	"fmt"
	"strings"

	"github.com/snapgrid/snapgrid/model"
	"github.com/snapgrid/snapgrid/units"
)

// Warning is one per-cell diagnostic. Row and Col index into the input grid,
// not the (possibly wider) output grid.
type Warning struct {
	Row     int
	Col     int
	Message string
}

// String renders the warning for a log panel.
func (w Warning) String() string {
	return fmt.Sprintf("cell (%d,%d): %s", w.Row, w.Col, w.Message)
}

// Result is the outcome of one pipeline run: a fresh grid plus per-cell
// warnings in row-major encounter order. It is never mutated after return.
type Result struct {
	Grid     *model.Grid
	Warnings []Warning
}

func (r *Result) warnf(row, col int, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{Row: row, Col: col, Message: fmt.Sprintf(format, args...)})
}

// Processor applies the cell pipeline to grids. The stage order is fixed:
// parse, threshold, unit conversion, value/unit split, notation conversion,
// copy-strategy projection. Disabled stages are skipped; the order of the
// enabled ones never changes.
//
// A processor is immutable and safe for concurrent use on independent grids.
type Processor struct {
	settings    Settings
	threshold   units.Value
	replacement units.Value
}

// NewProcessor validates the settings and builds a processor. Validation
// failures are structural errors; everything that can go wrong with cell
// content later degrades to warnings instead.
func NewProcessor(settings Settings) (*Processor, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	p := &Processor{settings: settings}
	if settings.ApplyThreshold {
		// An unparseable threshold value disables the filter: ApplyThreshold
		// no-ops when the threshold has no base magnitude.
		p.threshold = units.Parse(settings.ThresholdValue)
		p.replacement = units.Parse(settings.ThresholdReplaceWith)
	}
	return p, nil
}

// Process runs every cell of the grid through the pipeline. The input grid
// is left untouched. Cells that fail to parse keep their original string and
// produce one warning each; the pipeline never aborts on cell content.
func (p *Processor) Process(grid *model.Grid) *Result {
	res := &Result{}
	nRows, nCols := grid.RowCount(), grid.ColCount()

	values := make([][]units.Value, nRows)
	for i := 0; i < nRows; i++ {
		values[i] = make([]units.Value, nCols)
		for j := 0; j < nCols; j++ {
			cell := grid.Cell(i, j)
			v := units.Parse(cell)
			if v.Kind == units.Unparsed && strings.TrimSpace(cell) != "" {
				res.warnf(i, j, "%q is not a numeric value, left unchanged", cell)
			}
			values[i][j] = p.transform(v)
		}
	}

	// Split mode widens a source column into value and unit columns when any
	// cell in it is numeric. Non-numeric cells in such a column get an empty
	// unit cell, keeping the output rectangular.
	split := make([]bool, nCols)
	if p.settings.SplitValueUnit && p.settings.CopyStrategy == CopyAll {
		for j := 0; j < nCols; j++ {
			for i := 0; i < nRows; i++ {
				if values[i][j].IsNumeric() {
					split[j] = true
					break
				}
			}
		}
	}

	rows := make([][]string, nRows)
	for i := 0; i < nRows; i++ {
		row := make([]string, 0, nCols)
		for j := 0; j < nCols; j++ {
			v := values[i][j]
			value, unit := p.render(res, i, j, v)

			switch {
			case p.settings.CopyStrategy == CopyValueOnly:
				row = append(row, value)
			case p.settings.CopyStrategy == CopyUnitOnly && v.IsNumeric():
				row = append(row, unit)
			case p.settings.CopyStrategy == CopyUnitOnly:
				row = append(row, value)
			case split[j]:
				row = append(row, value, unit)
			default:
				row = append(row, value+unit)
			}
		}
		rows[i] = row
	}

	res.Grid = model.GridFromRows(rows)
	return res
}

// ProcessTSV is a convenience wrapper over Process for tab-separated input.
func (p *Processor) ProcessTSV(tsv string) (string, []Warning) {
	if tsv == "" {
		return "", nil
	}
	var rows [][]string
	for _, line := range strings.Split(tsv, "\n") {
		rows = append(rows, strings.Split(line, "\t"))
	}
	res := p.Process(model.GridFromRows(rows))
	return res.Grid.TSV(), res.Warnings
}

// transform applies the value-level stages in fixed order.
func (p *Processor) transform(v units.Value) units.Value {
	if p.settings.ApplyThreshold {
		v = units.ApplyThreshold(v, p.threshold, p.replacement)
	}
	if p.settings.ApplyUnitConversion {
		v = units.Convert(v, p.settings.TargetUnitPrefix)
	}
	return v
}

// render produces the magnitude and unit portions of one cell. For
// non-numeric cells the magnitude portion is the cell's original string and
// the unit portion is empty. Notation failures keep the plain rendering and
// record a warning.
func (p *Processor) render(res *Result, row, col int, v units.Value) (value, unit string) {
	if !v.IsNumeric() {
		return v.Format(), ""
	}
	value, unit = v.NumericString(), v.UnitString()

	if p.settings.NotationStyle == NotationNone {
		return value, unit
	}

	bare := v
	bare.Unit = ""
	var s string
	var err error
	switch p.settings.NotationStyle {
	case NotationScientific:
		s, err = units.ToScientific(bare, p.settings.Precision)
	case NotationEngineering:
		s, err = units.ToEngineering(bare, p.settings.Precision)
	}
	if err != nil {
		res.warnf(row, col, "cannot reformat %q: %v", v.Raw, err)
		return value, unit
	}
	return s, unit
}
