// =======================
// render/grid.go
// =======================

package render

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Matrix is a 2D raster backed by one flat slice, indexed row*cols+col.
// Out-of-bounds writes are dropped and out-of-bounds reads return the
// zero value, so callers can push projected points at it unchecked.
type Matrix[T constraints.Ordered] struct {
	cols, rows int
	data       []T
}

// NewMatrix allocates a zeroed cols x rows matrix. Non-positive sizes
// yield an empty matrix that swallows every access.
func NewMatrix[T constraints.Ordered](cols, rows int) *Matrix[T] {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Matrix[T]{cols: cols, rows: rows, data: make([]T, cols*rows)}
}

func (m *Matrix[T]) Cols() int { return m.cols }
func (m *Matrix[T]) Rows() int { return m.rows }

// InBounds reports whether (col, row) is a real cell.
func (m *Matrix[T]) InBounds(col, row int) bool {
	return col >= 0 && col < m.cols && row >= 0 && row < m.rows
}

// Set writes v at (col, row), silently dropping out-of-bounds writes.
func (m *Matrix[T]) Set(col, row int, v T) {
	if !m.InBounds(col, row) {
		return
	}
	m.data[row*m.cols+col] = v
}

// At reads (col, row), returning the zero value out of bounds.
func (m *Matrix[T]) At(col, row int) T {
	if !m.InBounds(col, row) {
		var zero T
		return zero
	}
	return m.data[row*m.cols+col]
}

// Fill sets every cell to v.
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// FrameGrid is one rendered frame: a rune raster over a background
// character. Cells never read back as anything but a written character
// or the background.
type FrameGrid struct {
	cells      *Matrix[rune]
	background rune
}

// NewFrameGrid allocates a frame with every cell set to background.
func NewFrameGrid(cols, rows int, background rune) *FrameGrid {
	cells := NewMatrix[rune](cols, rows)
	cells.Fill(background)
	return &FrameGrid{cells: cells, background: background}
}

func (g *FrameGrid) Cols() int        { return g.cells.Cols() }
func (g *FrameGrid) Rows() int        { return g.cells.Rows() }
func (g *FrameGrid) Background() rune { return g.background }

// InBounds reports whether (col, row) is a real cell.
func (g *FrameGrid) InBounds(col, row int) bool {
	return g.cells.InBounds(col, row)
}

// Set writes ch at (col, row); writes outside the grid are dropped.
func (g *FrameGrid) Set(col, row int, ch rune) {
	g.cells.Set(col, row, ch)
}

// At reads (col, row), returning the background outside the grid.
func (g *FrameGrid) At(col, row int) rune {
	if !g.cells.InBounds(col, row) {
		return g.background
	}
	return g.cells.At(col, row)
}

// String renders the frame as rows of text, each ending in a newline,
// top row first.
func (g *FrameGrid) String() string {
	var b strings.Builder
	b.Grow((g.Cols() + 1) * g.Rows())
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			b.WriteRune(g.cells.At(col, row))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
