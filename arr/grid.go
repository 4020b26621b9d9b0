package arr

import (
	"fmt"
	"strings"
)

// Grid is a fixed-size, row-major two-dimensional array.
//
// Unlike [][]T, every row of a Grid has the same length, so the zero value of
// a cell is always addressable. Use [NewGrid] to create one.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// NewGrid returns a rows × cols grid filled with the zero value of T.
// Negative dimensions are treated as 0.
func NewGrid[T any](rows, cols int) *Grid[T] {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

// Rows returns the number of rows. A nil grid has 0 rows.
func (g *Grid[T]) Rows() int {
	if g == nil {
		return 0
	}
	return g.rows
}

// Cols returns the number of columns. A nil grid has 0 columns.
func (g *Grid[T]) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// At returns the value at (row, col) together with a presence flag.
func (g *Grid[T]) At(row, col int) (T, bool) {
	var zero T
	if !g.inBounds(row, col) {
		return zero, false
	}
	return g.cells[row*g.cols+col], true
}

// Set stores v at (row, col).
// Returns [ErrIndexOutOfRange] when (row, col) lies outside the grid.
func (g *Grid[T]) Set(row, col int, v T) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", ErrIndexOutOfRange, row, col)
	}
	g.cells[row*g.cols+col] = v
	return nil
}

// Row returns a copy of row i, or nil if i is out of range.
func (g *Grid[T]) Row(i int) []T {
	if g == nil || i < 0 || i >= g.rows {
		return nil
	}
	out := make([]T, g.cols)
	copy(out, g.cells[i*g.cols:(i+1)*g.cols])
	return out
}

// Clear resets every cell to the zero value of T.
func (g *Grid[T]) Clear() {
	if g != nil {
		Clear(g.cells)
	}
}

func (g *Grid[T]) inBounds(row, col int) bool {
	return g != nil && row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// ToGridString returns the bracketed representation of g using the same
// layout as [ToArrayString2D]. A nil grid yields "[]".
func ToGridString[T any](g *Grid[T]) string {
	if g == nil {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < g.rows; i++ {
		if i != 0 {
			sb.WriteString(",\n ")
		}
		writeRow(&sb, g.cells[i*g.cols:(i+1)*g.cols])
	}
	sb.WriteByte(']')
	return sb.String()
}
