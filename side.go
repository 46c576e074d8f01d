package nxncube

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved

	// NoColor marks the sentinel cell returned for out-of-range lookups.
	NoColor Color = 99
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "invalid"
	}
}

// IsValid reports whether c is one of the six sticker colors.
func (c Color) IsValid() bool { return c <= Orange }

// Colors lists the six sticker colors in index order.
func Colors() []Color {
	return []Color{White, Yellow, Green, Blue, Red, Orange}
}

// Side identifies one of the six faces of the cube.
type Side int

const (
	Up    Side = 0
	Down  Side = 1
	Front Side = 2
	Back  Side = 3
	Right Side = 4
	Left  Side = 5

	// NoSide marks the sentinel cell returned for out-of-range lookups.
	NoSide Side = 99
)

const sideCount = 6

func (s Side) String() string {
	switch s {
	case Up:
		return "U"
	case Down:
		return "D"
	case Front:
		return "F"
	case Back:
		return "B"
	case Right:
		return "R"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Name returns the lower-case side name.
func (s Side) Name() string {
	switch s {
	case Up:
		return "up"
	case Down:
		return "down"
	case Front:
		return "front"
	case Back:
		return "back"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// IsValid reports whether s is one of the six sides.
func (s Side) IsValid() bool { return s >= Up && s <= Left }

// Opposite returns the side parallel to s.
func (s Side) Opposite() Side {
	switch s {
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	case Back:
		return Front
	case Right:
		return Left
	case Left:
		return Right
	default:
		return NoSide
	}
}

// SolvedColor returns the color a side shows when the cube is solved.
func (s Side) SolvedColor() Color {
	switch s {
	case Up:
		return White
	case Down:
		return Yellow
	case Front:
		return Green
	case Back:
		return Blue
	case Right:
		return Red
	case Left:
		return Orange
	default:
		return NoColor
	}
}

// Sides lists the six sides in index order.
func Sides() []Side {
	return []Side{Up, Down, Front, Back, Right, Left}
}

// ParseSide accepts a side letter (u, d, f, b, r, l) or name, case-insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "d", "down":
		return Down, nil
	case "f", "front":
		return Front, nil
	case "b", "back":
		return Back, nil
	case "r", "right":
		return Right, nil
	case "l", "left":
		return Left, nil
	}
	return NoSide, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}
