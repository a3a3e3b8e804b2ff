package snapgrid

import (
	"github.com/snapgrid/snapgrid/layout"
	"github.com/snapgrid/snapgrid/model"
	"github.com/snapgrid/snapgrid/pipeline"
)

// Reconstructor provides a fluent interface over one fragment set. Each
// configuration method returns a new Reconstructor, so a partially
// configured chain can be reused and shared across goroutines.
type Reconstructor struct {
	fragments []model.Fragment
	options   reconstructOptions

	// Accumulated error (fail-fast): terminals return it without doing work.
	err error
}

// clone creates a copy of the Reconstructor. The fragment slice is shared;
// fragments are immutable once created.
func (r *Reconstructor) clone() *Reconstructor {
	return &Reconstructor{
		fragments: r.fragments,
		options:   r.options,
		err:       r.err,
	}
}

// ============================================================================
// Configuration (each returns a new Reconstructor)
// ============================================================================

// Mode forces table or text reconstruction, or restores auto-detection.
func (r *Reconstructor) Mode(mode Mode) *Reconstructor {
	c := r.clone()
	c.options.mode = mode
	return c
}

// MinConfidence drops fragments whose recognition confidence is below min
// before reconstruction. The default of zero keeps everything.
func (r *Reconstructor) MinConfidence(min float64) *Reconstructor {
	c := r.clone()
	c.options.minConfidence = min
	return c
}

// DetectorConfig overrides the table-vs-text heuristic parameters.
func (r *Reconstructor) DetectorConfig(cfg layout.DetectorConfig) *Reconstructor {
	c := r.clone()
	c.options.detector = cfg
	return c
}

// TableConfig overrides the table reconstruction parameters.
func (r *Reconstructor) TableConfig(cfg layout.TableConfig) *Reconstructor {
	c := r.clone()
	c.options.table = cfg
	return c
}

// TextConfig overrides the text reconstruction parameters.
func (r *Reconstructor) TextConfig(cfg layout.TextConfig) *Reconstructor {
	c := r.clone()
	c.options.text = cfg
	return c
}

// Settings replaces the cell-processing settings used by Process and Render.
// Invalid settings fail the chain at its terminal operation.
func (r *Reconstructor) Settings(s pipeline.Settings) *Reconstructor {
	c := r.clone()
	c.options.settings = s
	if c.err == nil {
		c.err = s.Validate()
	}
	return c
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Detect resolves the reconstruction mode for this fragment set: the forced
// mode when one was configured, the heuristic classification otherwise. The
// result is never ModeAuto.
func (r *Reconstructor) Detect() (Mode, error) {
	if r.err != nil {
		return ModeText, r.err
	}
	return r.resolveMode(r.input()), nil
}

// Table reconstructs the fragments as a rectangular grid regardless of the
// configured mode.
func (r *Reconstructor) Table() (*model.Grid, []Warning, error) {
	if r.err != nil {
		return nil, nil, r.err
	}
	rec := layout.NewTableReconstructor()
	rec.Configure(r.options.table)
	return rec.Reconstruct(r.input()), nil, nil
}

// TSV reconstructs a grid and serializes it as tab-separated values.
func (r *Reconstructor) TSV() (string, []Warning, error) {
	grid, warnings, err := r.Table()
	if err != nil {
		return "", warnings, err
	}
	return grid.TSV(), warnings, nil
}

// Text reconstructs the fragments as a plain text block regardless of the
// configured mode.
func (r *Reconstructor) Text() (string, []Warning, error) {
	if r.err != nil {
		return "", nil, r.err
	}
	rec := layout.NewTextReconstructor()
	rec.Configure(r.options.text)
	return rec.Reconstruct(r.input()), nil, nil
}

// Process reconstructs a grid and runs every cell through the processing
// pipeline. Data-quality problems surface as warnings, never as errors.
func (r *Reconstructor) Process() (*model.Grid, []Warning, error) {
	grid, warnings, err := r.Table()
	if err != nil {
		return nil, warnings, err
	}
	proc, err := pipeline.NewProcessor(r.options.settings)
	if err != nil {
		return nil, warnings, err
	}
	res := proc.Process(grid)
	return res.Grid, append(warnings, res.Warnings...), nil
}

// Render produces the final clipboard-ready string: in table mode the
// processed grid as TSV, in text mode the reconstructed text block. Auto
// mode picks per the heuristic.
func (r *Reconstructor) Render() (string, []Warning, error) {
	if r.err != nil {
		return "", nil, r.err
	}

	if r.resolveMode(r.input()) == ModeTable {
		grid, warnings, err := r.Process()
		if err != nil {
			return "", warnings, err
		}
		return grid.TSV(), warnings, nil
	}
	return r.Text()
}

// input applies the confidence filter.
func (r *Reconstructor) input() []model.Fragment {
	if r.options.minConfidence <= 0 {
		return r.fragments
	}
	kept := make([]model.Fragment, 0, len(r.fragments))
	for _, f := range r.fragments {
		if f.Confidence >= r.options.minConfidence {
			kept = append(kept, f)
		}
	}
	return kept
}

func (r *Reconstructor) resolveMode(fragments []model.Fragment) Mode {
	switch r.options.mode {
	case ModeTable, ModeText:
		return r.options.mode
	}
	if layout.DetectMode(fragments, r.options.detector) == layout.ModeTable {
		return ModeTable
	}
	return ModeText
}
