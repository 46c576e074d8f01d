package notation

import (
	"testing"

	"github.com/SeamusWaldron/nxncube"
)

func turn(side nxncube.Side, layer, degree int) nxncube.Turn {
	return nxncube.Turn{Side: side, Layer: layer, Degree: degree}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		turn nxncube.Turn
		want string
	}{
		{nxncube.R, "R"},
		{nxncube.R.Inverse(), "R'"},
		{turn(nxncube.Up, 1, 180), "U2"},
		{turn(nxncube.Up, 1, -180), "U2"},
		{turn(nxncube.Front, 3, 270), "3F"},
		{turn(nxncube.Back, 2, 450), "2B'"},
		{turn(nxncube.Back, 1, 360), ""},
	}
	for _, tc := range tests {
		if got := Format(tc.turn); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.turn, got, tc.want)
		}
	}
}

func TestFormatSequence(t *testing.T) {
	if got := FormatSequence(nxncube.SexyMove); got != "R U R' U'" {
		t.Errorf("FormatSequence(SexyMove) = %q", got)
	}
	seq := []nxncube.Turn{nxncube.R, turn(nxncube.Up, 1, 0), nxncube.U.Inverse()}
	if got := FormatSequence(seq); got != "R U'" {
		t.Errorf("FormatSequence = %q", got)
	}
	if got := FormatSequence(nil); got != "" {
		t.Errorf("empty sequence = %q", got)
	}
}

func TestSimplify(t *testing.T) {
	R, U, F := nxncube.R, nxncube.U, nxncube.F
	R2 := turn(nxncube.Right, 2, -90)
	tests := []struct {
		in   []nxncube.Turn
		want string
	}{
		{[]nxncube.Turn{R, R}, "R2"},
		{[]nxncube.Turn{R, R.Inverse()}, ""},
		{[]nxncube.Turn{U, R, R.Inverse(), U.Inverse()}, ""},
		{[]nxncube.Turn{R, R, R}, "R'"},
		{[]nxncube.Turn{R, R2}, "R 2R"},
		{[]nxncube.Turn{turn(nxncube.Front, 1, 180), turn(nxncube.Front, 1, 180), U}, "U"},
		{[]nxncube.Turn{F.Inverse(), F.Inverse(), F.Inverse()}, "F"},
	}
	for _, tc := range tests {
		if got := FormatSequence(Simplify(tc.in)); got != tc.want {
			t.Errorf("Simplify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSimplifyPreservesState(t *testing.T) {
	turns := []nxncube.Turn{
		nxncube.R, nxncube.R, nxncube.U, nxncube.U.Inverse(),
		nxncube.F, turn(nxncube.Front, 2, -90), turn(nxncube.Front, 2, 90), nxncube.F.Inverse(), nxncube.F,
		turn(nxncube.Down, 1, 180), turn(nxncube.Down, 1, 180),
		turn(nxncube.Left, 3, 90), turn(nxncube.Left, 3, 270), turn(nxncube.Left, 3, 90),
	}
	a, _ := nxncube.New(4)
	b, _ := nxncube.New(4)
	if err := a.Apply(turns...); err != nil {
		t.Fatal(err)
	}
	simplified := Simplify(turns)
	if err := b.Apply(simplified...); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Errorf("simplified sequence %v reached a different state\n%s\nvs\n%s", simplified, a, b)
	}
	if len(simplified) >= len(turns) {
		t.Errorf("expected a shorter sequence, got %v", simplified)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		turn nxncube.Turn
		want string
	}{
		{turn(nxncube.Front, 1, -90), "Front layer 1 clockwise"},
		{turn(nxncube.Up, 2, 90), "Up layer 2 anti-clockwise"},
		{turn(nxncube.Right, 1, 180), "Right layer 1 x 2"},
		{turn(nxncube.Back, 1, 0), "Back layer 1 unchanged"},
	}
	for _, tc := range tests {
		if got := Describe(tc.turn); got != tc.want {
			t.Errorf("Describe(%v) = %q, want %q", tc.turn, got, tc.want)
		}
	}
}
