package nxncube

// Position addresses one sub-cube of an order-N cube.
// Layer runs Down (0) to Up (N-1), Row runs Back (0) to Front (N-1) and
// Col runs Left (0) to Right (N-1).
type Position struct {
	Layer int
	Row   int
	Col   int
}

// Axis names one of the three coordinates of a Position.
type Axis int

const (
	AxisLayer Axis = iota
	AxisRow
	AxisCol
)

func (a Axis) String() string {
	switch a {
	case AxisLayer:
		return "layer"
	case AxisRow:
		return "row"
	case AxisCol:
		return "col"
	default:
		return "?"
	}
}

func (p Position) coord(a Axis) int {
	switch a {
	case AxisLayer:
		return p.Layer
	case AxisRow:
		return p.Row
	default:
		return p.Col
	}
}

func (p *Position) setCoord(a Axis, v int) {
	switch a {
	case AxisLayer:
		p.Layer = v
	case AxisRow:
		p.Row = v
	default:
		p.Col = v
	}
}

// InRange reports whether every coordinate lies in [0, order).
func (p Position) InRange(order int) bool {
	return p.Layer >= 0 && p.Layer < order &&
		p.Row >= 0 && p.Row < order &&
		p.Col >= 0 && p.Col < order
}

// Direction says whether a face axis follows the cube coordinate or runs
// against it.
type Direction int

const (
	Forward Direction = iota
	Reversed
)

func (d Direction) String() string {
	if d == Reversed {
		return "reversed"
	}
	return "forward"
}

func (d Direction) apply(order, v int) int {
	if d == Reversed {
		return order - 1 - v
	}
	return v
}

// Alignment describes how a face's grid is laid over the cube coordinates
// when the face is viewed from outside: grid rows follow RowAxis in the
// Vertical direction, grid columns follow ColAxis in the Horizontal direction.
type Alignment struct {
	RowAxis    Axis
	Vertical   Direction
	ColAxis    Axis
	Horizontal Direction
}

// frame places a side in cube space: the plane it lies on plus its alignment.
type frame struct {
	normal Axis
	high   bool // plane at coordinate order-1 rather than 0
	align  Alignment
}

// Up is seen with Back at the top edge, Down with Front at the top edge and
// the four belt faces with Up at the top edge.
var frames = [sideCount]frame{
	Up:    {normal: AxisLayer, high: true, align: Alignment{AxisRow, Forward, AxisCol, Forward}},
	Down:  {normal: AxisLayer, high: false, align: Alignment{AxisRow, Reversed, AxisCol, Forward}},
	Front: {normal: AxisRow, high: true, align: Alignment{AxisLayer, Reversed, AxisCol, Forward}},
	Back:  {normal: AxisRow, high: false, align: Alignment{AxisLayer, Reversed, AxisCol, Reversed}},
	Right: {normal: AxisCol, high: true, align: Alignment{AxisLayer, Reversed, AxisRow, Reversed}},
	Left:  {normal: AxisCol, high: false, align: Alignment{AxisLayer, Reversed, AxisRow, Forward}},
}

// adjacency lists the neighbors of each side counter-clockwise as seen from
// outside that side, starting with the one on its top edge. The order is
// top, left, bottom, right of the side's own grid.
var adjacency = [sideCount][4]Side{
	Up:    {Back, Left, Front, Right},
	Down:  {Front, Left, Back, Right},
	Front: {Up, Left, Down, Right},
	Back:  {Up, Right, Down, Left},
	Right: {Up, Front, Down, Back},
	Left:  {Up, Back, Down, Front},
}

// AlignmentOf returns the fixed alignment of a side.
func AlignmentOf(side Side) (Alignment, bool) {
	if !side.IsValid() {
		return Alignment{}, false
	}
	return frames[side].align, true
}

// Neighbors returns the four sides bordering side in counter-clockwise
// order, or nil for an invalid side. It does not log; Cube.Neighbors does.
func Neighbors(side Side) []Side {
	if !side.IsValid() {
		return nil
	}
	n := adjacency[side]
	return n[:]
}

// onFace reports whether the sub-cube at p shows a sticker on side.
func onFace(side Side, order int, p Position) bool {
	f := frames[side]
	if f.high {
		return p.coord(f.normal) == order-1
	}
	return p.coord(f.normal) == 0
}

// depth is the distance of p from side's plane: 0 for sub-cubes touching the
// face, order-1 for those touching the opposite face.
func depth(side Side, order int, p Position) int {
	f := frames[side]
	if f.high {
		return order - 1 - p.coord(f.normal)
	}
	return p.coord(f.normal)
}

// project maps p onto side's grid. The normal coordinate is ignored, so any
// sub-cube has a projection, not just those on the face.
func project(side Side, order int, p Position) (row, col int) {
	a := frames[side].align
	return a.Vertical.apply(order, p.coord(a.RowAxis)), a.Horizontal.apply(order, p.coord(a.ColAxis))
}

// position is the inverse of project for sub-cubes on the face itself.
func position(side Side, order, row, col int) Position {
	f := frames[side]
	var p Position
	if f.high {
		p.setCoord(f.normal, order-1)
	}
	p.setCoord(f.align.RowAxis, f.align.Vertical.apply(order, row))
	p.setCoord(f.align.ColAxis, f.align.Horizontal.apply(order, col))
	return p
}

// InLayer reports whether the sticker at (row, col) of face moves when layer
// of side turns on a cube of the given order. That covers the layer's strip
// on the four neighbors plus the whole face grid for boundary layers.
func InLayer(order int, side Side, layer int, face Side, row, col int) bool {
	if !side.IsValid() || !face.IsValid() || layer < 1 || layer > order {
		return false
	}
	if row < 0 || row >= order || col < 0 || col >= order {
		return false
	}
	switch face {
	case side:
		return layer == 1
	case side.Opposite():
		return layer == order
	}
	return depth(side, order, position(face, order, row, col)) == layer-1
}
