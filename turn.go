package nxncube

import (
	"fmt"
	"strconv"
	"strings"
)

// Turn is one layer rotation: layer counts from Side starting at 1 and
// Degree is a multiple of 90, positive counter-clockwise seen from Side.
type Turn struct {
	Side   Side
	Layer  int
	Degree int
}

// Inverse returns the turn that undoes t.
func (t Turn) Inverse() Turn {
	inv := t
	inv.Degree = -t.Degree
	return inv
}

// String formats the turn as side:layer:degree, e.g. front:1:90.
func (t Turn) String() string {
	return fmt.Sprintf("%s:%d:%d", t.Side.Name(), t.Layer, t.Degree)
}

// ParseTurn parses the side:layer:degree form produced by Turn.String.
// The side may be a letter or a name.
func ParseTurn(s string) (Turn, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return Turn{}, fmt.Errorf("%w: %q", ErrInvalidTurn, s)
	}
	side, err := ParseSide(parts[0])
	if err != nil {
		return Turn{}, err
	}
	layer, err := strconv.Atoi(parts[1])
	if err != nil {
		return Turn{}, fmt.Errorf("%w: %q", ErrInvalidLayer, parts[1])
	}
	degree, err := strconv.Atoi(parts[2])
	if err != nil || degree%90 != 0 {
		return Turn{}, fmt.Errorf("%w: %q", ErrInvalidDegree, parts[2])
	}
	return Turn{Side: side, Layer: layer, Degree: degree}, nil
}

// ParseTurns parses a space-separated sequence of turns. The first bad
// entry fails the whole sequence.
func ParseTurns(s string) ([]Turn, error) {
	parts := strings.Fields(s)
	turns := make([]Turn, 0, len(parts))
	for _, part := range parts {
		t, err := ParseTurn(part)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, nil
}

// FormatTurns formats turns as a space-separated string.
func FormatTurns(turns []Turn) string {
	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// InverseTurns returns the sequence that undoes turns.
func InverseTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	for i, t := range turns {
		out[len(turns)-1-i] = t.Inverse()
	}
	return out
}

// Apply performs turns in order. It stops at the first rejected turn and
// returns its error; earlier turns stay applied.
func (c *Cube) Apply(turns ...Turn) error {
	for i, t := range turns {
		if err := c.RotateSide(t.Side, t.Layer, t.Degree); err != nil {
			return fmt.Errorf("turn %d (%s): %w", i, t, err)
		}
	}
	return nil
}

// Outer layer quarter turns, clockwise as seen from each side.
// Example:
//
//	cube.Apply(nxncube.SexyMove...)
var (
	R = Turn{Side: Right, Layer: 1, Degree: -90}
	L = Turn{Side: Left, Layer: 1, Degree: -90}
	U = Turn{Side: Up, Layer: 1, Degree: -90}
	D = Turn{Side: Down, Layer: 1, Degree: -90}
	F = Turn{Side: Front, Layer: 1, Degree: -90}
	B = Turn{Side: Back, Layer: 1, Degree: -90}
)

// SexyMove is R U R' U'; six repetitions return a 3x3 cube to its start.
var SexyMove = []Turn{R, U, R.Inverse(), U.Inverse()}
