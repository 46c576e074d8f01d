package nxncube

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/nxncube/pkg/grid"
)

// Cube is an order x order x order cube of stickers.
// Faces are indexed by Side and always all present.
//
// A Cube is not safe for concurrent use; see SyncCube.
type Cube struct {
	order  int
	faces  [sideCount]*Face
	logger logrus.FieldLogger
}

// New creates a solved cube of the given order with standard orientation:
// White on top, Green in front.
func New(order int, opts ...Option) (*Cube, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}
	cfg := newConfig(opts)
	c := &Cube{
		order:  order,
		logger: cfg.logger.WithField("order", order),
	}
	for _, side := range Sides() {
		c.faces[side] = newFace(order, side, side.SolvedColor(), cfg.logger)
	}
	return c, nil
}

// Order returns N.
func (c *Cube) Order() int { return c.order }

// Face returns the face on side, or nil for an invalid side.
func (c *Cube) Face(side Side) *Face {
	if !side.IsValid() {
		c.logger.WithField("side", int(side)).Error("face lookup with invalid side")
		return nil
	}
	return c.faces[side]
}

// Neighbors returns the four sides bordering side in counter-clockwise
// order. An invalid side is logged and yields an empty list.
func (c *Cube) Neighbors(side Side) []Side {
	if !side.IsValid() {
		c.logger.WithField("side", int(side)).Error("neighbor lookup with invalid side")
		return []Side{}
	}
	return Neighbors(side)
}

// Reset restores the solved state in place.
func (c *Cube) Reset() {
	for _, f := range c.faces {
		f.ResetCells()
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{order: c.order, logger: c.logger}
	for i, f := range c.faces {
		clone.faces[i] = f.clone()
	}
	return clone
}

// IsSolved returns true if every face shows its solved color.
func (c *Cube) IsSolved() bool {
	for _, f := range c.faces {
		if !f.IsSolved() {
			return false
		}
	}
	return true
}

// Equal reports whether both cubes hold identical cells in every slot.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.order != other.order {
		return false
	}
	for i, f := range c.faces {
		a, b := f.Cells(), other.faces[i].Cells()
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// RotateSide turns one layer of the cube. layer counts from side, starting
// at 1; degree must be a multiple of 90 and positive values turn
// counter-clockwise as seen looking at side from outside.
//
// Invalid input is logged and leaves the cube untouched.
func (c *Cube) RotateSide(side Side, layer, degree int) error {
	log := c.logger.WithFields(logrus.Fields{"side": side.String(), "layer": layer, "degree": degree})
	if !side.IsValid() {
		log.Error("turn rejected: invalid side")
		return fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	if layer < 1 || layer > c.order {
		log.Error("turn rejected: layer out of range")
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLayer, layer, c.order)
	}
	norm, err := grid.NormalizeDegree(degree)
	if err != nil {
		log.Error("turn rejected: degree not a multiple of 90")
		return fmt.Errorf("%w: %d", ErrInvalidDegree, degree)
	}
	if norm == 0 {
		return nil
	}
	degree = norm

	// The near boundary spins with the turn; the far boundary is seen from
	// the other side, so it spins the opposite way.
	if layer == 1 {
		if err := c.faces[side].Rotate(degree); err != nil {
			return err
		}
	}
	if layer == c.order {
		if err := c.faces[side.Opposite()].Rotate(-degree); err != nil {
			return err
		}
	}
	c.transferLayer(side, layer-1, degree)
	return nil
}

// ringSlot ties a composite grid position to the face cell packed there.
type ringSlot struct {
	row, col int
	cell     *Cell
}

// transferLayer moves the stickers of one layer between the four neighbors
// of side. The layer's strip on each neighbor is unfolded around side into
// a 3N x 3N cross: top, left, bottom and right arms in adjacency order, each
// strip at distance d from the center block. Rotating the cross once moves
// every strip onto the next arm, and the rotated content is copied back.
func (c *Cube) transferLayer(side Side, d, degree int) {
	n := c.order
	ring := grid.New[Cell](3*n, 3*n)
	slots := make([]ringSlot, 0, 4*n)

	for arm, nb := range adjacency[side] {
		f := c.faces[nb]
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				p := position(nb, n, row, col)
				if depth(side, n, p) != d {
					continue
				}
				pr, pc := project(side, n, p)
				r, cc := armSlot(arm, n, d, pr, pc)
				cell := f.at(row, col)
				ring.Set(r, cc, *cell)
				slots = append(slots, ringSlot{row: r, col: cc, cell: cell})
			}
		}
	}

	if err := ring.Rotate(degree); err != nil {
		// Unreachable: the cross is square and degree was normalized.
		c.logger.WithError(err).Error("layer transfer failed")
		return
	}
	for _, s := range slots {
		v, _ := ring.Get(s.row, s.col)
		s.cell.copyContent(v)
	}
}

// armSlot places a sticker whose projection onto the turning side is
// (pr, pc) into the cross grid. Arms are 0 top, 1 left, 2 bottom, 3 right.
func armSlot(arm, n, d, pr, pc int) (int, int) {
	switch arm {
	case 0:
		return n - 1 - d, n + pc
	case 1:
		return n + pr, n - 1 - d
	case 2:
		return 2*n + d, n + pc
	default:
		return n + pr, 2*n + d
	}
}

// Stickers returns the colors visible on the sub-cube at (layer, row, col),
// keyed by side. Corners show three, edges two, face centers one and
// interior sub-cubes none. Out-of-range addresses are logged and yield an
// empty map.
func (c *Cube) Stickers(layer, row, col int) map[Side]Color {
	out := make(map[Side]Color, 3)
	p := Position{Layer: layer, Row: row, Col: col}
	if !p.InRange(c.order) {
		c.logger.WithFields(logrus.Fields{"layer": layer, "row": row, "col": col}).Error("sticker query out of range")
		return out
	}
	for _, side := range Sides() {
		if !onFace(side, c.order, p) {
			continue
		}
		r, cc := project(side, c.order, p)
		cell := c.faces[side].Cell(r, cc)
		if cell.IsValid() {
			out[side] = cell.Color
		}
	}
	return out
}

// StickerCells is like Stickers but returns the full cells.
func (c *Cube) StickerCells(p Position) map[Side]Cell {
	out := make(map[Side]Cell, 3)
	if !p.InRange(c.order) {
		c.logger.WithFields(logrus.Fields{"layer": p.Layer, "row": p.Row, "col": p.Col}).Error("sticker query out of range")
		return out
	}
	for _, side := range Sides() {
		if onFace(side, c.order, p) {
			r, cc := project(side, c.order, p)
			out[side] = c.faces[side].Cell(r, cc)
		}
	}
	return out
}

// String returns the debug dump: Up rows indented, Left/Front/Right rows
// side by side, then Down and Back rows indented.
//
//	\t[W,W,W]
//	[O,O,O]\t[G,G,G]\t[R,R,R]
//	\t[Y,Y,Y]
//	\t[B,B,B]
func (c *Cube) String() string {
	var sb strings.Builder

	for row := 0; row < c.order; row++ {
		sb.WriteString("\t" + c.faces[Up].rowString(row) + "\n")
	}
	for row := 0; row < c.order; row++ {
		sb.WriteString(c.faces[Left].rowString(row))
		sb.WriteString("\t" + c.faces[Front].rowString(row))
		sb.WriteString("\t" + c.faces[Right].rowString(row) + "\n")
	}
	for _, side := range []Side{Down, Back} {
		for row := 0; row < c.order; row++ {
			sb.WriteString("\t" + c.faces[side].rowString(row) + "\n")
		}
	}
	return sb.String()
}
