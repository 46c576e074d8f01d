package grid

import (
	"errors"
	"reflect"
	"testing"
)

func seq(rows, cols int) *Grid[int] {
	g := New[int](rows, cols)
	values := make([]int, rows*cols)
	for i := range values {
		values[i] = i
	}
	if err := g.ReplaceAll(values); err != nil {
		panic(err)
	}
	return g
}

func TestNewIsZeroed(t *testing.T) {
	g := New[int](2, 3)
	if g.Rows() != 2 || g.Cols() != 3 || g.Len() != 6 {
		t.Fatalf("unexpected dimensions %dx%d len %d", g.Rows(), g.Cols(), g.Len())
	}
	for _, v := range g.Values() {
		if v != 0 {
			t.Errorf("expected zero value, got %d", v)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	g := seq(3, 3)
	cases := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}}
	for _, c := range cases {
		if _, ok := g.Get(c[0], c[1]); ok {
			t.Errorf("Get(%d, %d) should be out of range", c[0], c[1])
		}
		if _, ok := g.At(c[0], c[1]); ok {
			t.Errorf("At(%d, %d) should be out of range", c[0], c[1])
		}
		if g.Set(c[0], c[1], 42) {
			t.Errorf("Set(%d, %d) should be rejected", c[0], c[1])
		}
	}
	if v, ok := g.Get(2, 1); !ok || v != 7 {
		t.Errorf("Get(2, 1) = %d, %v; want 7, true", v, ok)
	}
}

func TestAtWritesThrough(t *testing.T) {
	g := seq(2, 2)
	p, ok := g.At(1, 0)
	if !ok {
		t.Fatal("At(1, 0) should be in range")
	}
	*p = 99
	if v, _ := g.Get(1, 0); v != 99 {
		t.Errorf("expected write through slot pointer, got %d", v)
	}
}

func TestAtTracksSlotNotValue(t *testing.T) {
	g := seq(3, 3)
	p, ok := g.At(0, 0)
	if !ok || *p != 0 {
		t.Fatalf("At(0,0) = %v, %v", p, ok)
	}
	if err := g.Rotate(90); err != nil {
		t.Fatal(err)
	}
	// The slot now holds what was at (0,2).
	if *p != 2 {
		t.Errorf("after Rotate the slot holds %d, want 2", *p)
	}
	values := make([]int, 9)
	for i := range values {
		values[i] = 10 + i
	}
	if err := g.ReplaceAll(values); err != nil {
		t.Fatal(err)
	}
	if *p != 10 {
		t.Errorf("after ReplaceAll the slot holds %d, want 10", *p)
	}
}

func TestReplaceAllLengthMismatch(t *testing.T) {
	g := seq(2, 2)
	err := g.ReplaceAll([]int{9, 9, 9})
	if !errors.Is(err, ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
	if !reflect.DeepEqual(g.Values(), []int{0, 1, 2, 3}) {
		t.Errorf("grid changed after rejected ReplaceAll: %v", g.Values())
	}
}

func TestRotate90(t *testing.T) {
	g := seq(3, 3)
	if err := g.Rotate(90); err != nil {
		t.Fatal(err)
	}
	want := []int{
		2, 5, 8,
		1, 4, 7,
		0, 3, 6,
	}
	if !reflect.DeepEqual(g.Values(), want) {
		t.Errorf("Rotate(90) = %v, want %v", g.Values(), want)
	}
}

func TestRotateEvenOrder(t *testing.T) {
	g := seq(4, 4)
	if err := g.Rotate(90); err != nil {
		t.Fatal(err)
	}
	want := []int{
		3, 7, 11, 15,
		2, 6, 10, 14,
		1, 5, 9, 13,
		0, 4, 8, 12,
	}
	if !reflect.DeepEqual(g.Values(), want) {
		t.Errorf("Rotate(90) = %v, want %v", g.Values(), want)
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		g := seq(n, n)
		orig := g.Values()
		for i := 0; i < 4; i++ {
			if err := g.Rotate(90); err != nil {
				t.Fatal(err)
			}
		}
		if !reflect.DeepEqual(g.Values(), orig) {
			t.Errorf("n=%d: four quarter turns should be identity, got %v", n, g.Values())
		}
	}
}

func TestRotate360IsIdentity(t *testing.T) {
	g := seq(5, 5)
	orig := g.Values()
	if err := g.Rotate(360); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Values(), orig) {
		t.Errorf("Rotate(360) should be identity, got %v", g.Values())
	}
	if err := g.Rotate(0); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Values(), orig) {
		t.Errorf("Rotate(0) should be identity, got %v", g.Values())
	}
}

func TestRotateNegativeEqualsComplement(t *testing.T) {
	a := seq(4, 4)
	b := seq(4, 4)
	if err := a.Rotate(-90); err != nil {
		t.Fatal(err)
	}
	if err := b.Rotate(270); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Values(), b.Values()) {
		t.Errorf("Rotate(-90) = %v, Rotate(270) = %v", a.Values(), b.Values())
	}

	c := seq(3, 3)
	if err := c.Rotate(-450); err != nil {
		t.Fatal(err)
	}
	d := seq(3, 3)
	if err := d.Rotate(270); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(c.Values(), d.Values()) {
		t.Errorf("Rotate(-450) = %v, want %v", c.Values(), d.Values())
	}
}

func TestRotateRejectsBadInput(t *testing.T) {
	g := seq(3, 3)
	orig := g.Values()
	if err := g.Rotate(45); !errors.Is(err, ErrDegree) {
		t.Errorf("expected ErrDegree, got %v", err)
	}
	if !reflect.DeepEqual(g.Values(), orig) {
		t.Error("grid changed after rejected rotation")
	}

	rect := seq(2, 3)
	if err := rect.Rotate(90); !errors.Is(err, ErrNotSquare) {
		t.Errorf("expected ErrNotSquare, got %v", err)
	}
	if err := rect.Rotate(0); err != nil {
		t.Errorf("Rotate(0) on a rectangle should be a no-op, got %v", err)
	}
}

func TestRowAndCol(t *testing.T) {
	g := seq(3, 4)
	if got := g.Row(1); !reflect.DeepEqual(got, []int{4, 5, 6, 7}) {
		t.Errorf("Row(1) = %v", got)
	}
	if got := g.Col(2); !reflect.DeepEqual(got, []int{2, 6, 10}) {
		t.Errorf("Col(2) = %v", got)
	}
	if g.Row(3) != nil || g.Col(-1) != nil {
		t.Error("out of range row/col should be nil")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := seq(2, 2)
	c := g.Clone()
	c.Set(0, 0, 100)
	if v, _ := g.Get(0, 0); v != 0 {
		t.Errorf("clone shares storage with original, got %d", v)
	}

	type box struct{ v *int }
	one := 1
	bg := New[box](1, 1)
	bg.Set(0, 0, box{v: &one})
	deep := bg.CloneFunc(func(b box) box {
		v := *b.v
		return box{v: &v}
	})
	*deep.elems[0].v = 2
	if one != 1 {
		t.Error("CloneFunc should not share referenced values")
	}
}

func TestNormalizeDegree(t *testing.T) {
	cases := map[int]int{0: 0, 90: 90, -90: 270, 360: 0, -360: 0, 450: 90, -630: 90}
	for in, want := range cases {
		got, err := NormalizeDegree(in)
		if err != nil {
			t.Errorf("NormalizeDegree(%d): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeDegree(%d) = %d, want %d", in, got, want)
		}
	}
	if _, err := NormalizeDegree(100); !errors.Is(err, ErrDegree) {
		t.Errorf("expected ErrDegree, got %v", err)
	}
}
