package model

import (
	"fmt"
	"strings"
)

// Grid represents a rectangular table of cell strings. Every row has the same
// column count; intersections with no content hold the empty string.
type Grid struct {
	rows [][]string
}

// NewGrid creates a grid with the given dimensions, filled with empty strings.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: make([][]string, rows)}
	for i := range g.rows {
		g.rows[i] = make([]string, cols)
	}
	return g
}

// RowCount returns the number of rows
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// ColCount returns the number of columns
func (g *Grid) ColCount() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Cell returns the cell content at the given row and column (0-indexed).
// Out-of-range indices return the empty string.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	if col < 0 || col >= len(g.rows[row]) {
		return ""
	}
	return g.rows[row][col]
}

// SetCell sets the cell at the given position
func (g *Grid) SetCell(row, col int, text string) error {
	if row < 0 || row >= len(g.rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(g.rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	g.rows[row][col] = text
	return nil
}

// AppendToCell adds text to a cell, separated by a single space when the cell
// already has content. Used when multiple fragments map to one intersection.
func (g *Grid) AppendToCell(row, col int, text string) error {
	existing := g.Cell(row, col)
	if existing != "" {
		text = existing + " " + text
	}
	return g.SetCell(row, col, text)
}

// Row returns a copy of the given row, or nil when out of range.
func (g *Grid) Row(row int) []string {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	out := make([]string, len(g.rows[row]))
	copy(out, g.rows[row])
	return out
}

// TSV serializes the grid as tab-separated columns and newline-separated
// rows, suitable for direct paste into spreadsheet applications.
func (g *Grid) TSV() string {
	var sb strings.Builder
	for i, row := range g.rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(row, "\t"))
	}
	return sb.String()
}

// GridFromRows builds a grid from raw rows, padding short rows with empty
// strings so the result is rectangular.
func GridFromRows(rows [][]string) *Grid {
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	g := NewGrid(len(rows), cols)
	for i, r := range rows {
		copy(g.rows[i], r)
	}
	return g
}
