package notation

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SeamusWaldron/nxncube"
)

// Describe spells a turn out in words as seen facing the turned side.
//
//	front:1:-90 -> "Front layer 1 clockwise"
//	up:2:90     -> "Up layer 2 anti-clockwise"
//	right:1:180 -> "Right layer 1 x 2"
func Describe(t nxncube.Turn) string {
	name := cases.Title(language.English).String(t.Side.Name())
	switch quarters(t.Degree) {
	case 1:
		return fmt.Sprintf("%s layer %d anti-clockwise", name, t.Layer)
	case 2:
		return fmt.Sprintf("%s layer %d x 2", name, t.Layer)
	case 3:
		return fmt.Sprintf("%s layer %d clockwise", name, t.Layer)
	}
	return fmt.Sprintf("%s layer %d unchanged", name, t.Layer)
}
