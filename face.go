package nxncube

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/nxncube/pkg/grid"
)

// Face is one side of the cube: an order x order grid of cells viewed from
// outside the cube.
type Face struct {
	side   Side
	color  Color // solved color
	order  int
	align  Alignment
	cells  *grid.Grid[Cell]
	logger logrus.FieldLogger
}

// NewFace creates a solved face. Cell ids run in row-major order starting at
// int(side)*order*order, so ids are unique across a cube.
func NewFace(order int, side Side, color Color, opts ...Option) (*Face, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	if !side.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	return newFace(order, side, color, newConfig(opts).logger), nil
}

func newFace(order int, side Side, color Color, logger logrus.FieldLogger) *Face {
	f := &Face{
		side:   side,
		color:  color,
		order:  order,
		align:  frames[side].align,
		cells:  grid.New[Cell](order, order),
		logger: logger.WithField("side", side.String()),
	}
	f.ResetCells()
	return f
}

// Side returns the side this face sits on.
func (f *Face) Side() Side { return f.side }

// SolvedColor returns the color every cell shows when solved.
func (f *Face) SolvedColor() Color { return f.color }

// Order returns the grid dimension.
func (f *Face) Order() int { return f.order }

// Alignment returns the face's fixed alignment.
func (f *Face) Alignment() Alignment { return f.align }

// AdjacentSides returns the four bordering sides, counter-clockwise.
func (f *Face) AdjacentSides() [4]Side { return adjacency[f.side] }

// Cell returns the cell at (row, col). Out-of-range lookups are logged and
// return a sentinel for which IsValid is false.
func (f *Face) Cell(row, col int) Cell {
	c, ok := f.cells.Get(row, col)
	if !ok {
		f.logger.WithFields(logrus.Fields{"row": row, "col": col}).Error("cell lookup out of range")
		return invalidCell
	}
	return c
}

func (f *Face) at(row, col int) *Cell {
	c, _ := f.cells.At(row, col)
	return c
}

// Cells returns a row-major copy of the cells.
func (f *Face) Cells() []Cell { return f.cells.Values() }

// Colors returns the current colors as rows.
func (f *Face) Colors() [][]Color {
	out := make([][]Color, f.order)
	for row := range out {
		out[row] = make([]Color, f.order)
		for col := range out[row] {
			out[row][col] = f.at(row, col).Color
		}
	}
	return out
}

// IsSolved reports whether every cell shows the solved color.
func (f *Face) IsSolved() bool {
	for _, c := range f.cells.Values() {
		if c.Color != f.color {
			return false
		}
	}
	return true
}

// ResetCells restores every cell to its solved slot, color and id in place.
func (f *Face) ResetCells() {
	base := int(f.side) * f.order * f.order
	f.cells.Each(func(row, col int, c *Cell) {
		*c = Cell{
			Row:   row,
			Col:   col,
			Side:  f.side,
			Color: f.color,
			ID:    base + row*f.order + col,
		}
	})
}

// Rotate turns the face grid counter-clockwise (as seen from outside) by
// degree. It does not move any neighbor stickers; use Cube.RotateSide for a
// full turn.
func (f *Face) Rotate(degree int) error {
	if err := f.cells.Rotate(degree); err != nil {
		f.logger.WithError(err).WithField("degree", degree).Error("face rotation rejected")
		return fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	f.sync()
	return nil
}

// sync rewrites each cell's position to match the slot it now occupies.
func (f *Face) sync() {
	f.cells.Each(func(row, col int, c *Cell) {
		c.Row = row
		c.Col = col
		c.Side = f.side
	})
}

// SwapRow exchanges the sticker content of one row with the same row of
// other, column by column.
func (f *Face) SwapRow(other *Face, row int) error {
	if err := f.checkPair(other); err != nil {
		return err
	}
	if row < 0 || row >= f.order {
		f.logger.WithField("row", row).Error("row swap out of range")
		return fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	for col := 0; col < f.order; col++ {
		Swap(f.at(row, col), other.at(row, col))
	}
	return nil
}

// SwapCol exchanges the sticker content of one column with the same column
// of other, row by row.
func (f *Face) SwapCol(other *Face, col int) error {
	if err := f.checkPair(other); err != nil {
		return err
	}
	if col < 0 || col >= f.order {
		f.logger.WithField("col", col).Error("column swap out of range")
		return fmt.Errorf("%w: col %d", ErrOutOfRange, col)
	}
	for row := 0; row < f.order; row++ {
		Swap(f.at(row, col), other.at(row, col))
	}
	return nil
}

func (f *Face) checkPair(other *Face) error {
	if other == nil || other == f || other.order != f.order {
		f.logger.Error("swap needs a distinct face of the same order")
		return fmt.Errorf("%w: swap partner", ErrInvalidSide)
	}
	return nil
}

func (f *Face) clone() *Face {
	c := *f
	c.cells = f.cells.Clone()
	return &c
}

// rowString renders one grid row as [c0,c1,...].
func (f *Face) rowString(row int) string {
	s := "["
	for col := 0; col < f.order; col++ {
		if col > 0 {
			s += ","
		}
		s += f.at(row, col).Color.String()
	}
	return s + "]"
}
