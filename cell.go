package nxncube

import "fmt"

// Cell is one sticker. Row, Col and Side always name the slot the cell
// occupies; Color and ID are the sticker content that travels during turns.
type Cell struct {
	Row   int
	Col   int
	Side  Side
	Color Color
	ID    int // creation order, stable across turns
}

// invalidCell is returned for out-of-range lookups.
var invalidCell = Cell{Row: -1, Col: -1, Side: NoSide, Color: NoColor, ID: -1}

// IsValid reports whether the cell is a real sticker rather than the
// out-of-range sentinel.
func (c Cell) IsValid() bool {
	return c.Side.IsValid() && c.Color.IsValid()
}

func (c Cell) String() string {
	return fmt.Sprintf("%s(%d,%d)#%d:%s", c.Side, c.Row, c.Col, c.ID, c.Color)
}

// Swap exchanges the sticker content of two cells; both keep their slot.
func Swap(a, b *Cell) {
	a.Color, b.Color = b.Color, a.Color
	a.ID, b.ID = b.ID, a.ID
}

// copyContent overwrites c's sticker content with src's.
func (c *Cell) copyContent(src Cell) {
	c.Color = src.Color
	c.ID = src.ID
}
