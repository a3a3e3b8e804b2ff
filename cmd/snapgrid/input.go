package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/snapgrid/snapgrid/model"
)

// fragmentJSON is the on-disk shape of one recognized fragment. Box is
// either a rectangle [x1, y1, x2, y2] or a polygon [[x, y], ...].
type fragmentJSON struct {
	Box        json.RawMessage `json:"box"`
	Text       string          `json:"text"`
	Confidence float64         `json:"confidence"`
}

// readInput returns the raw input bytes and the file name it came from,
// empty when reading stdin.
func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return data, args[0], nil
}

func decodeFragments(data []byte) ([]model.Fragment, error) {
	var raw []fragmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode fragments: %w", err)
	}

	fragments := make([]model.Fragment, 0, len(raw))
	for i, rf := range raw {
		f, err := rf.fragment()
		if err != nil {
			return nil, fmt.Errorf("fragment %d: %w", i, err)
		}
		fragments = append(fragments, f)
	}
	return fragments, nil
}

func (rf fragmentJSON) fragment() (model.Fragment, error) {
	var corners [4]float64
	if err := json.Unmarshal(rf.Box, &corners); err == nil {
		return model.NewFragmentFromCorners(corners[0], corners[1], corners[2], corners[3], rf.Text, rf.Confidence)
	}

	var poly [][2]float64
	if err := json.Unmarshal(rf.Box, &poly); err != nil {
		return model.Fragment{}, fmt.Errorf("box must be [x1,y1,x2,y2] or a list of [x,y] points")
	}
	points := make([]model.Point, len(poly))
	for i, p := range poly {
		points[i] = model.Point{X: p[0], Y: p[1]}
	}
	return model.NewFragmentFromPolygon(points, rf.Text, rf.Confidence)
}
