// Package grid provides a generic rectangular container with bounded access
// and in-place rotation by multiples of 90 degrees.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	ErrDegree    = errors.New("grid: degree must be a multiple of 90")
	ErrNotSquare = errors.New("grid: rotation requires a square grid")
	ErrLength    = errors.New("grid: value count does not match grid size")
)

// Grid is a rows x cols container stored in row-major order.
// The grid owns its elements; Get returns copies, At returns the slot itself.
type Grid[T any] struct {
	rows  int
	cols  int
	elems []T
}

// New allocates a grid with every slot set to the zero value of T.
// Non-positive dimensions produce an empty grid.
func New[T any](rows, cols int) *Grid[T] {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid[T]{rows: rows, cols: cols, elems: make([]T, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid[T]) Len() int { return len(g.elems) }

// InBounds reports whether (row, col) addresses a slot of the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid[T]) index(row, col int) int { return row*g.cols + col }

// Get returns a copy of the element at (row, col).
// The boolean is false when the address is out of range.
func (g *Grid[T]) Get(row, col int) (T, bool) {
	if !g.InBounds(row, col) {
		var zero T
		return zero, false
	}
	return g.elems[g.index(row, col)], true
}

// At returns a pointer to the slot at (row, col), or false when out of range.
// The slot's content changes after Rotate or ReplaceAll.
func (g *Grid[T]) At(row, col int) (*T, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	return &g.elems[g.index(row, col)], true
}

// Set stores v at (row, col). It returns false and writes nothing when the
// address is out of range.
func (g *Grid[T]) Set(row, col int, v T) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.elems[g.index(row, col)] = v
	return true
}

// ReplaceAll repopulates the grid in row-major order.
// The grid is left untouched unless len(values) == rows*cols.
func (g *Grid[T]) ReplaceAll(values []T) error {
	if len(values) != len(g.elems) {
		return fmt.Errorf("%w: got %d, want %d", ErrLength, len(values), len(g.elems))
	}
	copy(g.elems, values)
	return nil
}

// Values returns a row-major copy of every element.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.elems))
	copy(out, g.elems)
	return out
}

// Each calls fn for every slot in row-major order.
func (g *Grid[T]) Each(fn func(row, col int, v *T)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, &g.elems[g.index(row, col)])
		}
	}
}

// Row returns a copy of one row, or nil when out of range.
func (g *Grid[T]) Row(row int) []T {
	if row < 0 || row >= g.rows {
		return nil
	}
	out := make([]T, g.cols)
	copy(out, g.elems[g.index(row, 0):g.index(row, 0)+g.cols])
	return out
}

// Col returns a copy of one column, or nil when out of range.
func (g *Grid[T]) Col(col int) []T {
	if col < 0 || col >= g.cols {
		return nil
	}
	out := make([]T, g.rows)
	for row := 0; row < g.rows; row++ {
		out[row] = g.elems[g.index(row, col)]
	}
	return out
}

// Clone returns an element-wise copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return g.CloneFunc(func(v T) T { return v })
}

// CloneFunc returns a copy of the grid whose elements are produced by fn.
// Use it when T holds references that must not be shared.
func (g *Grid[T]) CloneFunc(fn func(T) T) *Grid[T] {
	out := New[T](g.rows, g.cols)
	for i, v := range g.elems {
		out.elems[i] = fn(v)
	}
	return out
}

// NormalizeDegree maps a multiple of 90 onto [0, 360).
func NormalizeDegree(degree int) (int, error) {
	if degree%90 != 0 {
		return 0, fmt.Errorf("%w: %d", ErrDegree, degree)
	}
	for degree < 0 {
		degree += 360
	}
	return degree % 360, nil
}

// Rotate turns the grid counter-clockwise by degree, which must be a
// multiple of 90. Negative values rotate clockwise. Only square grids rotate.
//
//	0 1 2      2 5 8
//	3 4 5  ->  1 4 7
//	6 7 8      0 3 6
func (g *Grid[T]) Rotate(degree int) error {
	degree, err := NormalizeDegree(degree)
	if err != nil {
		return err
	}
	if g.rows != g.cols {
		return fmt.Errorf("%w: %dx%d", ErrNotSquare, g.rows, g.cols)
	}
	for turns := degree / 90; turns > 0; turns-- {
		g.quarterTurn()
	}
	return nil
}

// quarterTurn performs one counter-clockwise four-way ring swap:
// A(i,j) <- A(j,n-1-i) <- A(n-1-i,n-1-j) <- A(n-1-j,i) <- A(i,j).
func (g *Grid[T]) quarterTurn() {
	n := g.rows
	for i := 0; i < n/2; i++ {
		for j := i; j < n-i-1; j++ {
			a := g.index(i, j)
			b := g.index(j, n-i-1)
			c := g.index(n-i-1, n-j-1)
			d := g.index(n-j-1, i)
			g.elems[a], g.elems[b], g.elems[c], g.elems[d] = g.elems[b], g.elems[c], g.elems[d], g.elems[a]
		}
	}
}
