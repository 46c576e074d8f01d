// Package notation writes turns in standard cube notation for display:
// an optional layer number, the side letter and a suffix, e.g. R, U', F2
// or 2R for the second layer. Unmarked turns are clockwise as seen from
// the side.
package notation

import (
	"strconv"
	"strings"

	"github.com/SeamusWaldron/nxncube"
)

// quarters normalizes a degree to quarter turns in [0, 4).
func quarters(degree int) int {
	return ((degree/90)%4 + 4) % 4
}

// Format returns the notation for a single turn, e.g. R, 2U', F2.
// Turns that do nothing format as "".
func Format(t nxncube.Turn) string {
	var suffix string
	switch quarters(t.Degree) {
	case 0:
		return ""
	case 1:
		suffix = "'"
	case 2:
		suffix = "2"
	}
	prefix := ""
	if t.Layer > 1 {
		prefix = strconv.Itoa(t.Layer)
	}
	return prefix + t.Side.String() + suffix
}

// FormatSequence formats turns as a space-separated string.
func FormatSequence(turns []nxncube.Turn) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		if s := Format(t); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Simplify merges adjacent turns of the same layer and drops turns that
// cancel out. Half turns are written as 180.
func Simplify(turns []nxncube.Turn) []nxncube.Turn {
	out := make([]nxncube.Turn, 0, len(turns))
	for _, t := range turns {
		if n := len(out); n > 0 && out[n-1].Side == t.Side && out[n-1].Layer == t.Layer {
			merged := out[n-1]
			merged.Degree += t.Degree
			out = out[:n-1]
			t = merged
		}
		if q := normalize(t.Degree); q != 0 {
			t.Degree = q
			out = append(out, t)
		}
	}
	return out
}

// normalize maps a degree to one of 0, 90, 180 or -90.
func normalize(degree int) int {
	switch quarters(degree) {
	case 1:
		return 90
	case 2:
		return 180
	case 3:
		return -90
	}
	return 0
}
